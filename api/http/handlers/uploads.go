package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeboard/api/http/presenter"
	"github.com/artem13815/resumeboard/pkg/resume"
	"github.com/artem13815/resumeboard/pkg/upload"
)

type UploadsHandler struct {
	uploader *upload.Uploader
	maxBytes int64
}

func NewUploadsHandler(u *upload.Uploader, maxBytes int64) *UploadsHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &UploadsHandler{uploader: u, maxBytes: maxBytes}
}

// Upload accepts PDF/DOCX files under "files" (or a single "file") and answers with
// the placeholders; processing continues in the background.
// @Summary Загрузить резюме
// @Description Принимает PDF/DOCX и сразу отвечает заглушками; обработка идёт в фоне.
// @Tags        Загрузка
// @Accept      multipart/form-data
// @Produce     json
// @Param       files formData file true "Файлы резюме (PDF/DOCX)"
// @Security    BearerAuth
// @Success     202 {object} presenter.ListResponse[resume.Record]
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Router      /uploads [post]
func (h *UploadsHandler) Upload(c *fiber.Ctx) error {
	files, err := h.readFiles(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	phs := h.uploader.Upload(c.UserContext(), files)
	return presenter.JSON(c, http.StatusAccepted, presenter.ListResponse[resume.Record]{Items: phs, Total: len(phs)})
}

// Samples appends the demo records.
// @Summary Добавить демо-резюме
// @Tags     Загрузка
// @Produce  json
// @Security BearerAuth
// @Success  201 {object} presenter.ListResponse[resume.Record]
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /samples [post]
func (h *UploadsHandler) Samples(c *fiber.Ctx) error {
	added := h.uploader.AppendSamples()
	return presenter.JSON(c, http.StatusCreated, presenter.ListResponse[resume.Record]{Items: added, Total: len(added)})
}

func (h *UploadsHandler) readFiles(c *fiber.Ctx) ([]upload.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("files are required (pdf or docx)")
	}
	headers := append(form.File["files"], form.File["file"]...)
	if len(headers) == 0 {
		return nil, fmt.Errorf("files are required (pdf or docx)")
	}
	out := make([]upload.File, 0, len(headers))
	for _, fh := range headers {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if ext != ".pdf" && ext != ".docx" {
			return nil, fmt.Errorf("%s: unsupported file format: only pdf and docx are allowed", fh.Filename)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file %s", fh.Filename)
		}
		data, err := readAtMost(f, h.maxBytes)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fh.Filename, err)
		}
		ct := fh.Header.Get("Content-Type")
		if ct == "" || ct == "application/octet-stream" {
			ct = contentTypeFor(ext)
		}
		out = append(out, upload.File{Name: filepath.Base(fh.Filename), ContentType: ct, Data: data})
	}
	return out, nil
}

func contentTypeFor(ext string) string {
	if ext == ".docx" {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
