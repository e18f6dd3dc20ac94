package api

// Puzzle is one daily letter set.
type Puzzle struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Letters   string `json:"letters"`
	MinLength int    `json:"min_length"`
	WordCount int    `json:"word_count"`
}

// GuessResult is the server's verdict on one submitted word.
type GuessResult struct {
	Valid   bool   `json:"valid"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// Hint is a partial reveal of an unfound word.
type Hint struct {
	Text string `json:"text"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	DeviceID string `json:"device_id"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type guessRequest struct {
	Word string `json:"word"`
}

type errorResponse struct {
	Error string `json:"error"`
}
