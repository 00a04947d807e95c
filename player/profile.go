package player

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

const profilePrefix = "browser-"

// profileLocks are the files Chromium keeps in a user data directory while it runs:
// SingletonLock is a dangling symlink on unix, lockfile is used on windows.
var profileLocks = []string{"SingletonLock", "lockfile"}

// profileMu keeps cleanup away from a profile that is being created and launched.
var profileMu sync.Mutex

// CleanProfiles removes the browser profiles under dir that no running browser holds.
// Anything else in dir is left alone.
func CleanProfiles(dir string) error {
	profileMu.Lock()
	defer profileMu.Unlock()

	fs := filesystem.API()
	infos, err := fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var errs []error
	for _, info := range infos {
		if !info.IsDir() || !strings.HasPrefix(info.Name(), profilePrefix) {
			continue
		}

		profile := filepath.Join(dir, info.Name())
		if profileInUse(profile) {
			log.Debugf("player: profile %s is in use, kept", profile)
			continue
		}

		if err := fs.RemoveAll(profile); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Debugf("player: stale profile %s removed", profile)
	}

	return errors.Join(errs...)
}

func profileInUse(profile string) bool {
	return lo.SomeBy(profileLocks, func(name string) bool {
		_, err := lstat(filepath.Join(profile, name))
		return err == nil
	})
}

// lstat does not follow the lock symlink, whose target never exists.
func lstat(path string) (os.FileInfo, error) {
	fs := filesystem.API()
	if l, ok := fs.Fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

// newProfile creates a fresh user data directory under dir.
// The caller must hold profileMu until the browser has started.
func newProfile(dir string) (string, error) {
	fs := filesystem.API()
	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	return fs.TempDir(dir, profilePrefix)
}
