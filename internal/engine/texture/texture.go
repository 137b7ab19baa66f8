package texture

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/logger"
)

// Upload2D creates a mipmapped, repeating 2D texture from img.
func Upload2D(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Load2D loads path into a 2D texture, flipped so texcoord (0,0) is the
// bottom-left corner of the image.
func Load2D(l Loader, path string) (uint32, error) {
	img, err := LoadImage(l, path)
	if err != nil {
		return 0, fmt.Errorf("load texture: %w", err)
	}
	FlipVertical(img)
	tex := Upload2D(img)
	logger.Debug("texture loaded", zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	return tex, nil
}

// LoadCubeMap loads six faces into a cube map texture.
func LoadCubeMap(l Loader, faces CubeFaces) (uint32, error) {
	imgs, err := LoadCubeFaces(l, faces)
	if err != nil {
		return 0, fmt.Errorf("load cube map: %w", err)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	for i, img := range imgs {
		size := int32(img.Bounds().Dx())
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA, size, size, 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	logger.Debug("cube map loaded", zap.String("px", faces[0]), zap.Int("size", imgs[0].Bounds().Dx()))
	return tex, nil
}

// Delete releases textures; zero IDs are skipped.
func Delete(textures ...uint32) {
	for _, tex := range textures {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
		}
	}
}
