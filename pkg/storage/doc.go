// Package storage writes downloaded team logos to disk.
//
// Each logo is stored as <id>.png in the output directory. Writes go to a
// temporary file in the same directory and are renamed into place, so a
// previous logo is replaced atomically and a failed write leaves no partial
// file behind. Existing files are always overwritten.
//
// Usage:
//
//	manager, err := storage.NewManager(".")
//	if err != nil {
//	    return err
//	}
//	n, err := manager.SaveLogo(bytes.NewReader(data), 17)
package storage
