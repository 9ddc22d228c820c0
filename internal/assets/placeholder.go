// internal/assets/placeholder.go
package assets

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/aquilax/go-perlin"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	noiseDownscale = 4     // фон считается в 4 раза мельче и растягивается
	sampleRate     = 44100 // частота синтезированных звуков
)

// PlaceholderLoader рисует ресурсы процедурно: корабли и снаряды — простыми
// фигурами, фоны — шумом Перлина, звуки — синтезированными WAV.
// Нужен, чтобы игра запускалась без каталога ресурсов.
type PlaceholderLoader struct {
	width, height int
	seed          int64
	noise         *perlin.Perlin
}

func NewPlaceholderLoader(seed int64, width, height int) *PlaceholderLoader {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &PlaceholderLoader{
		width:  width,
		height: height,
		seed:   seed,
		noise:  perlin.NewPerlin(alpha, beta, n, seed),
	}
}

func (p *PlaceholderLoader) Image(id string) (image.Image, error) {
	switch {
	case strings.HasPrefix(id, "bg_menu"):
		var frame int
		if i := strings.LastIndexByte(id, '_'); i >= 0 {
			for _, r := range id[i+1:] {
				if r >= '0' && r <= '9' {
					frame = frame*10 + int(r-'0')
				}
			}
		}
		return p.nebula(float64(frame)*0.15, color.RGBA{90, 40, 160, 255}, color.RGBA{20, 120, 200, 255}, 0), nil
	case id == "bg_game" || strings.HasPrefix(id, "bg_game_"):
		return p.nebula(0, color.RGBA{10, 20, 60, 255}, color.RGBA{40, 10, 70, 255}, 140), nil
	case strings.HasPrefix(id, "bg_"):
		return p.nebula(7, color.RGBA{120, 10, 10, 255}, color.RGBA{40, 0, 0, 255}, 40), nil
	case id == "player":
		return triangle(64, 64, true, color.RGBA{80, 220, 255, 255}), nil
	case strings.HasPrefix(id, "enemy"):
		return triangle(64, 64, false, tint(id)), nil
	case strings.HasPrefix(id, "missile"):
		if strings.Contains(id, "bolt") {
			return ellipse(8, 24, color.RGBA{255, 240, 120, 255}), nil
		}
		return ellipse(16, 16, tint(id)), nil
	}
	return checker(32, 32), nil
}

func (p *PlaceholderLoader) Sound(id string) ([]byte, error) {
	switch id {
	case "shoot":
		return p.wav(0.08, func(t float64) float64 { return math.Sin(2 * math.Pi * (880 - 3000*t) * t) }), nil
	case "explosion":
		return p.wav(0.35, func(t float64) float64 { return p.noise.Noise1D(t * 2000) }), nil
	case "hit":
		return p.wav(0.2, func(t float64) float64 { return math.Copysign(1, math.Sin(2*math.Pi*220*t)) * 0.6 }), nil
	}
	return p.wav(0.1, func(t float64) float64 { return math.Sin(2 * math.Pi * 440 * t) }), nil
}

func (p *PlaceholderLoader) Font(string) ([]byte, error) {
	return goregular.TTF, nil
}

// nebula — шум Перлина в двух цветах; z сдвигает срез шума (кадры анимации),
// stars — число звёзд поверх.
func (p *PlaceholderLoader) nebula(z float64, c1, c2 color.RGBA, stars int) image.Image {
	sw, sh := p.width/noiseDownscale, p.height/noiseDownscale
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			v := (p.noise.Noise3D(float64(x)/40, float64(y)/40, z) + 1) / 2
			v = math.Max(0, math.Min(1, v))
			small.SetRGBA(x, y, color.RGBA{
				R: lerp(c2.R, c1.R, v) / 2,
				G: lerp(c2.G, c1.G, v) / 2,
				B: lerp(c2.B, c1.B, v) / 2,
				A: 255,
			})
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)

	// Звёзды — детерминированный LCG от сида
	s := uint64(p.seed)*6364136223846793005 + 1442695040888963407
	for i := 0; i < stars; i++ {
		s = s*6364136223846793005 + 1442695040888963407
		x := int(s>>33) % p.width
		s = s*6364136223846793005 + 1442695040888963407
		y := int(s>>33) % p.height
		dst.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
	}
	return dst
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// tint — стабильный цвет по идентификатору
func tint(id string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(id))
	v := h.Sum32()
	return color.RGBA{R: 180 + uint8(v%76), G: 40 + uint8(v>>8%120), B: 40 + uint8(v>>16%80), A: 255}
}

// triangle — равнобедренный треугольник вершиной вверх (up) или вниз
func triangle(w, h int, up bool, c color.RGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		// доля ширины на этой строке
		f := float64(y+1) / float64(h)
		if !up {
			f = float64(h-y) / float64(h)
		}
		half := f * float64(w) / 2
		for x := 0; x < w; x++ {
			if math.Abs(float64(x)+0.5-float64(w)/2) <= half {
				img.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, 255})
			}
		}
	}
	return img
}

func ellipse(w, h int, c color.RGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			dy := (float64(y) + 0.5 - ry) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, 255})
			}
		}
	}
	return img
}

// checker — «нет текстуры»
func checker(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{255, 0, 255, 255}
			if (x/8+y/8)%2 == 1 {
				c = color.NRGBA{0, 0, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// wav синтезирует 16-битный моно PCM длиной dur секунд с затуханием
func (p *PlaceholderLoader) wav(dur float64, wave func(t float64) float64) []byte {
	n := int(dur * sampleRate)
	pcm := make([]int16, n)
	for i := range pcm {
		t := float64(i) / sampleRate
		env := 1 - t/dur
		pcm[i] = int16(math.Max(-1, math.Min(1, wave(t))) * env * 0.5 * math.MaxInt16)
	}

	var buf bytes.Buffer
	dataSize := uint32(n * 2)
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVEfmt ")
	for _, v := range []any{
		uint32(16),             // размер fmt
		uint16(1),              // PCM
		uint16(1),              // моно
		uint32(sampleRate),     // частота
		uint32(sampleRate * 2), // байт в секунду
		uint16(2),              // выравнивание блока
		uint16(16),             // бит на сэмпл
	} {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, pcm)
	return buf.Bytes()
}
