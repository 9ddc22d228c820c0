// internal/assets/loader.go
package assets

import (
	"errors"
	"image"
	"log"
)

// ErrNotFound — ресурса с таким идентификатором нет
var ErrNotFound = errors.New("asset not found")

// Loader отдаёт ресурсы по идентификатору. Картинки декодированы,
// звуки и шрифты — исходные байты файла (формат звука определяет проигрыватель).
type Loader interface {
	Image(id string) (image.Image, error)
	Sound(id string) ([]byte, error)
	Font(id string) ([]byte, error)
}

// Fallback берёт ресурс из Primary, а отсутствующие — из Secondary.
// Любая ошибка Primary, кроме ErrNotFound, возвращается как есть.
type Fallback struct {
	Primary   Loader
	Secondary Loader
}

func (f Fallback) Image(id string) (image.Image, error) {
	img, err := f.Primary.Image(id)
	if errors.Is(err, ErrNotFound) {
		log.Printf("Image %q not found, using placeholder", id)
		return f.Secondary.Image(id)
	}
	return img, err
}

func (f Fallback) Sound(id string) ([]byte, error) {
	data, err := f.Primary.Sound(id)
	if errors.Is(err, ErrNotFound) {
		log.Printf("Sound %q not found, using placeholder", id)
		return f.Secondary.Sound(id)
	}
	return data, err
}

func (f Fallback) Font(id string) ([]byte, error) {
	data, err := f.Primary.Font(id)
	if errors.Is(err, ErrNotFound) {
		return f.Secondary.Font(id)
	}
	return data, err
}
