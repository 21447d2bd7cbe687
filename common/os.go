package common

import (
	"os"

	"github.com/pkg/errors"
)

// WriteFileAtomic writes newBytes to filePath. A pre-existing file is kept
// as filePath+".bak" and the new content lands via rename from filePath+".new".
func WriteFileAtomic(filePath string, newBytes []byte, mode os.FileMode) error {
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		fileBytes, err := os.ReadFile(filePath)
		if err != nil {
			return errors.Wrapf(err, "could not read file %v", filePath)
		}
		if err = os.WriteFile(filePath+".bak", fileBytes, mode); err != nil {
			return errors.Wrapf(err, "could not write file %v", filePath+".bak")
		}
	}
	if err := os.WriteFile(filePath+".new", newBytes, mode); err != nil {
		return errors.Wrapf(err, "could not write file %v", filePath+".new")
	}
	return os.Rename(filePath+".new", filePath)
}
