package helper

import (
	"bytes"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFixture(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["photo"][0]
}

func TestDetectFileContentType(t *testing.T) {
	pngHeader := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")

	t.Run("Sniffs From Bytes And Rewinds", func(t *testing.T) {
		file, err := multipartFixture(t, "jane.png", pngHeader).Open()
		require.NoError(t, err)
		defer file.Close()

		contentType, err := DetectFileContentType(file)
		require.NoError(t, err)
		assert.Equal(t, "image/png", contentType)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, data)
	})

	t.Run("Empty File", func(t *testing.T) {
		file, err := multipartFixture(t, "empty.png", nil).Open()
		require.NoError(t, err)
		defer file.Close()

		_, err = DetectFileContentType(file)
		assert.Error(t, err)
	})
}

func TestEncodeImageDataURI(t *testing.T) {
	uri, err := EncodeImageDataURI(multipartFixture(t, "jane.PNG", []byte("pixels")))
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,cGl4ZWxz", uri)
}

func TestIsAllowedImage(t *testing.T) {
	assert.True(t, IsAllowedImage("jane.png"))
	assert.True(t, IsAllowedImage("jane.JPEG"))
	assert.False(t, IsAllowedImage("notes.txt"))
	assert.False(t, IsAllowedImage("jane"))
}
