package reader

import (
	"fmt"
	"path"
	"strings"

	"github.com/achilleasa/polaris/asset"
	"github.com/achilleasa/polaris/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or an http/https URL.
func ReadScene(filename string) (*scene.Scene, error) {
	// Select reader based on file extension
	var reader Reader
	switch strings.ToLower(path.Ext(filename)) {
	case ".scene", ".txt":
		reader = newTextSceneReader()
	default:
		return nil, fmt.Errorf("readScene: unsupported file format %q", path.Ext(filename))
	}

	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res)
}
