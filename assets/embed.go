package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed vocab.txt templates
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// VocabList returns the embedded default vocabulary, used when no
// VOCAB_FILE is configured.
func VocabList() ([]string, error) {
	return readLines("vocab.txt")
}

// Templates returns the embedded HTML template tree rooted at templates/.
func Templates() fs.FS {
	sub, err := fs.Sub(FS, "templates")
	if err != nil {
		// the templates directory is embedded at build time
		panic(err)
	}
	return sub
}
