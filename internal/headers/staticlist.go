package headers

import (
	"fmt"
	"strings"

	"github.com/vvka-141/umbrella/internal/files/filesystem"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

// ReadStaticList reads the newline-separated static include list at path.
// Blank lines are ignored; everything else is kept verbatim, in file order.
// The file order is the dependency-correct order a human curated and is
// preserved into the generated output.
func ReadStaticList(fsProvider filesystem.FileSystemProvider, path string) (umbrella.IncludeList, error) {
	content, err := fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("static include list %q: %w: %w", path, umbrella.ErrInvalidConfig, err)
	}

	var list umbrella.IncludeList
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		list = append(list, umbrella.IncludeDirective(line))
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("static include list %q: %w", path, umbrella.ErrEmptyContent)
	}

	return list, nil
}
