package resource

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

var modelExtensions = map[string]bool{
	"gltf": true,
	"glb":  true,
	"obj":  true,
	"fbx":  true,
	"iqm":  true,
	"m3d":  true,
	"vox":  true,
}

// Texture formats raylib loads that filetype does not classify as images.
var extraTextureExtensions = map[string]bool{
	"tga":  true,
	"hdr":  true,
	"dds":  true,
	"ktx":  true,
	"pkm":  true,
	"pvr":  true,
	"astc": true,
	"qoi":  true,
}

// DetectKind guesses the resource kind of a file from its extension,
// falling back to the file header when the extension says nothing.
func DetectKind(path string) (Kind, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch {
	case modelExtensions[ext]:
		return KindModel, true
	case extraTextureExtensions[ext]:
		return KindTexture, true
	case filetype.GetType(ext).MIME.Type == "image":
		return KindTexture, true
	}

	header := make([]byte, 261)
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()
	n, _ := f.Read(header)
	if n > 0 && filetype.IsImage(header[:n]) {
		return KindTexture, true
	}
	return 0, false
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
