package detect

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pubforge/pompub"
)

// GitRemote infers the project URL and SCM coordinates from the origin
// remote recorded in .git/config. Projects without a git checkout, or with
// an origin it cannot make sense of, contribute nothing.
type GitRemote struct{}

// Name implements pompub.Detector.
func (GitRemote) Name() string {
	return "git-remote"
}

// Detect implements pompub.Detector.
func (GitRemote) Detect(proj pompub.ProjectContext) (pompub.Partial, error) {
	if proj.Dir == "" {
		return pompub.Partial{}, nil
	}

	f, err := os.Open(filepath.Join(proj.Dir, ".git", "config"))
	if err != nil {
		// No checkout is routine, anything else degrades the same way.
		return pompub.Partial{}, nil
	}
	defer func() { _ = f.Close() }()

	remote, err := originURL(f)
	if err != nil {
		return pompub.Partial{}, err
	}

	web := webURL(remote)
	if web == "" {
		return pompub.Partial{}, nil
	}

	var p pompub.Partial
	p.ProjectInfo.URL = web
	p.ProjectInfo.SCM.URL = web
	return p, nil
}

// originURL scans a git config for the url of the "origin" remote.
func originURL(f *os.File) (string, error) {
	var inOrigin bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inOrigin = line == `[remote "origin"]`
			continue
		}
		if !inOrigin {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if found && strings.TrimSpace(key) == "url" {
			return strings.TrimSpace(value), nil
		}
	}
	return "", scanner.Err()
}

// webURL normalizes a clone URL into a browsable https URL. Supported
// shapes are https://host/owner/repo(.git), ssh://git@host/owner/repo(.git)
// and the scp-like git@host:owner/repo(.git); anything else yields "".
func webURL(remote string) string {
	switch {
	case remote == "":
		return ""
	case strings.HasPrefix(remote, "https://"), strings.HasPrefix(remote, "http://"):
		return strings.TrimSuffix(strings.TrimSuffix(remote, "/"), ".git")
	case strings.HasPrefix(remote, "ssh://"):
		rest := strings.TrimPrefix(remote, "ssh://")
		if at := strings.IndexByte(rest, '@'); at >= 0 {
			rest = rest[at+1:]
		}
		return "https://" + strings.TrimSuffix(strings.TrimSuffix(rest, "/"), ".git")
	case strings.Contains(remote, "@") && strings.Contains(remote, ":"):
		rest := remote[strings.IndexByte(remote, '@')+1:]
		host, path, found := strings.Cut(rest, ":")
		if !found || host == "" || path == "" {
			return ""
		}
		return "https://" + host + "/" + strings.TrimSuffix(path, ".git")
	default:
		return ""
	}
}
