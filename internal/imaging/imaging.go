package imaging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Upload - загруженный файл фотографии
type Upload struct {
	Name string
	Data []byte
}

// Вариант размера, в котором сохраняется каждая фотография
type variant struct {
	label  string
	width  int
	height int
}

// Для каждой фотографии сохраняются три варианта с центрированной обрезкой
var variants = []variant{
	{label: "thumbnail", width: 150, height: 150},
	{label: "preview", width: 600, height: 600},
	{label: "full", width: 1200, height: 1200},
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Service обрабатывает загруженные фотографии: нарезает варианты
// фиксированных размеров и сохраняет их на диск
type Service struct {
	uploadDir  string
	publicPath string
	logger     *logrus.Logger
}

// NewService создает сервис обработки изображений и каталог загрузок
func NewService(uploadDir, publicPath string, logger *logrus.Logger) (*Service, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Service{
		uploadDir:  uploadDir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		logger:     logger,
	}, nil
}

// Process сохраняет три варианта фотографии под именами
// <catID>-<unixmilli>-<суффикс>-<label><ext> и возвращает публичные URL
func (s *Service) Process(catID string, file Upload) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(file.Name))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("unsupported image extension %q", ext)
	}

	src, err := imaging.Decode(bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Суффикс различает фотографии одного кота в пределах одного запроса
	suffix := uuid.NewString()[:8]
	timestamp := time.Now().UnixMilli()
	urls := make([]string, 0, len(variants))

	for _, v := range variants {
		// Центрированная обрезка с заполнением всего кадра
		resized := imaging.Fill(src, v.width, v.height, imaging.Center, imaging.Lanczos)

		filename := fmt.Sprintf("%s-%d-%s-%s%s", catID, timestamp, suffix, v.label, ext)
		if err := imaging.Save(resized, filepath.Join(s.uploadDir, filename)); err != nil {
			return nil, fmt.Errorf("failed to save image variant %s: %w", v.label, err)
		}
		urls = append(urls, s.publicPath+"/"+filename)
	}

	return urls, nil
}

// ProcessAll обрабатывает набор фотографий и возвращает URL всех вариантов
func (s *Service) ProcessAll(catID string, files []Upload) ([]string, error) {
	urls := make([]string, 0, len(files)*len(variants))
	for _, file := range files {
		fileURLs, err := s.Process(catID, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, fileURLs...)
	}
	return urls, nil
}

// Delete удаляет файлы всех перечисленных URL. Ошибки логируются
// и не прерывают удаление остальных файлов.
func (s *Service) Delete(urls []string) {
	for _, url := range urls {
		path := filepath.Join(s.uploadDir, filepath.Base(url))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.WithError(err).WithField("path", path).Error("Failed to delete image file")
		}
	}
}
