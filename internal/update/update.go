// Package update checks whether a newer client release exists. It only
// compares and reports; installation is left to the user's package manager.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Release describes the latest published client version.
type Release struct {
	Version string `json:"version"`
	URL     string `json:"url"`
}

// CheckLatest queries the server's latest-release endpoint.
func CheckLatest(ctx context.Context, serverURL string) (Release, error) {
	httpc := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverURL+"/v1/client/latest", nil)
	if err != nil {
		return Release{}, err
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("check latest release: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("check latest release: server returned %s", resp.Status)
	}
	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return Release{}, fmt.Errorf("decode latest release: %w", err)
	}
	return rel, nil
}

// Compare orders two semantic versions. Returns -1 when a < b, 0 when
// equal, 1 when a > b. A leading "v" and any pre-release suffix are
// ignored; missing numeric parts count as zero.
func Compare(a, b string) int {
	pa := parts(a)
	pb := parts(b)
	for i := 0; i < 3; i++ {
		if pa[i] != pb[i] {
			if pa[i] < pb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Newer reports whether latest is strictly newer than current.
func Newer(current, latest string) bool {
	return Compare(current, latest) < 0
}

func parts(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	var out [3]int
	for i, p := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		out[i] = n
	}
	return out
}
