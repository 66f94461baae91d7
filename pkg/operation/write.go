// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

const backupSuffix = ".bak"

// writeFileInPlace truncates and rewrites path. A crash mid-write can leave a
// partial file.
func writeFileInPlace(path string, content []byte) error {
	if err := os.WriteFile(path, content, fileMode(path)); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

// writeFileAtomic writes to a temp file next to path and renames it over path
func writeFileAtomic(path string, content []byte) error {
	mode := fileMode(path)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// writeBackup copies the original bytes to path + ".bak"
func writeBackup(path string, original []byte) (string, error) {
	backup := path + backupSuffix
	if err := os.WriteFile(backup, original, fileMode(path)); err != nil {
		return "", errors.Errorf("writing backup: %w", err)
	}
	return backup, nil
}

func fileMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0644
	}
	return info.Mode().Perm()
}
