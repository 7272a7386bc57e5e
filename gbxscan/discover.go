package gbxscan

import (
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
)

const DefaultExtension = ".Gbx"

// Discover calls found for every regular file below root whose name ends
// in ext. The match is case sensitive and an empty ext matches everything.
// A root that names a file is always passed to found.
func Discover(fs billy.Filesystem, root string, ext string, found func(path string) error) error {
	info, err := fs.Lstat(root)
	if err != nil {
		return errors.Wrapf(err, "discover %s", root)
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return errors.Wrapf(ErrorNotRegular, "discover %s", root)
		}
		return filterStop(found(root))
	}

	err = util.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() || !strings.HasSuffix(info.Name(), ext) {
			return nil
		}
		return found(path)
	})

	return filterStop(err)
}

func filterStop(err error) error {
	if errors.Is(err, ErrorStopDiscovery) {
		return nil
	}
	return err
}
