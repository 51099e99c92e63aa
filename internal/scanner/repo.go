package scanner

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
)

// IsRepository reports whether the path opens as a git repository, searching
// parent directories the way git itself does.
func IsRepository(path string) bool {
	_, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// DetectAuthor reads the author identity from the repository's git config,
// falling back through global scope. Name is preferred over email since the
// log author filter matches either.
func DetectAuthor(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository %s: %w", path, err)
	}

	cfg, err := repo.ConfigScoped(gitconfig.GlobalScope)
	if err != nil {
		return "", fmt.Errorf("read git config: %w", err)
	}

	if cfg.User.Name != "" {
		return cfg.User.Name, nil
	}
	if cfg.User.Email != "" {
		return cfg.User.Email, nil
	}
	return "", fmt.Errorf("no author identity configured in %s", path)
}
