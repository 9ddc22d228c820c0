// internal/assets/dir.go
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	imageExts = []string{".png", ".jpg", ".jpeg"}
	soundExts = []string{".wav", ".ogg", ".mp3"}
	fontExts  = []string{".ttf", ".otf"}
)

// DirLoader читает ресурсы из каталога:
// images/<id>.png|jpg, sounds/<id>.wav|ogg|mp3, fonts/<id>.ttf|otf.
// Декодированные картинки кэшируются.
type DirLoader struct {
	root   string
	images map[string]image.Image
}

func NewDirLoader(root string) *DirLoader {
	return &DirLoader{root: root, images: make(map[string]image.Image)}
}

func (d *DirLoader) Image(id string) (image.Image, error) {
	if img, ok := d.images[id]; ok {
		return img, nil
	}
	path, err := d.find("images", id, imageExts)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	d.images[id] = img
	return img, nil
}

func (d *DirLoader) Sound(id string) ([]byte, error) {
	return d.read("sounds", id, soundExts)
}

func (d *DirLoader) Font(id string) ([]byte, error) {
	return d.read("fonts", id, fontExts)
}

func (d *DirLoader) read(dir, id string, exts []string) ([]byte, error) {
	path, err := d.find(dir, id, exts)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// find ищет первый существующий файл id с одним из расширений
func (d *DirLoader) find(dir, id string, exts []string) (string, error) {
	for _, ext := range exts {
		path := filepath.Join(d.root, dir, id+ext)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("%s/%s in %s: %w", dir, id, d.root, ErrNotFound)
}
