// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// DefaultMirror is the canonical wikimedia dump mirror.
const DefaultMirror = "https://dumps.wikimedia.org"

// langPattern matches wiki language codes like "he", "en", or "simple".
var langPattern = regexp.MustCompile(`^[a-z]{2,12}$`)

// Resolve turns a fetch argument into the dump URL to download. A bare
// language code maps to the latest pages-articles export on the mirror;
// anything with a scheme is taken as a direct URL.
func Resolve(arg, mirror string) (string, error) {
	if mirror == "" {
		mirror = DefaultMirror
	}

	if strings.Contains(arg, "://") {
		u, err := url.Parse(arg)
		if err != nil || u.Host == "" {
			return "", fmt.Errorf("invalid dump URL %q", arg)
		}
		return arg, nil
	}

	if langPattern.MatchString(arg) {
		wiki := arg + "wiki"
		return fmt.Sprintf("%s/%s/latest/%s-latest-pages-articles.xml.bz2",
			strings.TrimSuffix(mirror, "/"), wiki, wiki), nil
	}

	return "", fmt.Errorf("unrecognized dump identifier %q: use a language code or a URL", arg)
}

// DestName returns the local file name for a dump URL.
func DestName(dumpURL string) string {
	u, err := url.Parse(dumpURL)
	if err != nil {
		return path.Base(dumpURL)
	}
	return path.Base(u.Path)
}
