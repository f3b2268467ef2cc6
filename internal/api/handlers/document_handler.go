package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/domain/document"
	"github.com/linskybing/recruit-go/pkg/response"
	"github.com/linskybing/recruit-go/pkg/storage"
)

// BlobStore stores uploaded document content. storage.Store satisfies it.
type BlobStore interface {
	Put(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error)
}

type DocumentHandler struct {
	service *application.DocumentService
	blobs   BlobStore
}

func NewDocumentHandler(service *application.DocumentService, blobs BlobStore) *DocumentHandler {
	return &DocumentHandler{service: service, blobs: blobs}
}

func (h *DocumentHandler) Verify(c *gin.Context) {
	aid, ok := idParam(c, "id")
	if !ok {
		return
	}
	did, ok := idParam(c, "document_id")
	if !ok {
		return
	}
	var input document.VerifyDocumentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	v, err := h.service.Verify(c.Request.Context(), application.VerifyInput{
		DocumentID:   did,
		AssignmentID: aid,
		Decision:     document.VerificationStatus(input.Decision),
		Reason:       input.Reason,
		By:           uid,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(v, "Document "+input.Decision))
}

func (h *DocumentHandler) RequestResubmission(c *gin.Context) {
	aid, ok := idParam(c, "id")
	if !ok {
		return
	}
	did, ok := idParam(c, "document_id")
	if !ok {
		return
	}
	var input document.ResubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	v, err := h.service.RequestResubmission(c.Request.Context(), did, aid, input.Reason, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(v, "Resubmission requested"))
}

func (h *DocumentHandler) Reupload(c *gin.Context) {
	aid, ok := idParam(c, "id")
	if !ok {
		return
	}
	did, ok := idParam(c, "document_id")
	if !ok {
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	file, ok := h.fileInfo(c, aid)
	if !ok {
		return
	}
	v, err := h.service.Reupload(c.Request.Context(), application.ReuploadInput{
		DocumentID:   did,
		AssignmentID: aid,
		File:         file,
		By:           uid,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(v, "Document resubmitted"))
}

func (h *DocumentHandler) Replace(c *gin.Context) {
	aid, ok := idParam(c, "id")
	if !ok {
		return
	}
	typeID, ok := idParam(c, "type_id")
	if !ok {
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	file, ok := h.fileInfo(c, aid)
	if !ok {
		return
	}
	v, err := h.service.Replace(c.Request.Context(), application.ReplaceInput{
		AssignmentID:   aid,
		DocumentTypeID: typeID,
		File:           file,
		By:             uid,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OKMessage(v, "Document uploaded"))
}

func (h *DocumentHandler) Attach(c *gin.Context) {
	aid, ok := idParam(c, "id")
	if !ok {
		return
	}
	did, ok := idParam(c, "document_id")
	if !ok {
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	v, err := h.service.Attach(c.Request.Context(), aid, did, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(v))
}

func (h *DocumentHandler) Complete(c *gin.Context) {
	aid, ok := idParam(c, "id")
	if !ok {
		return
	}
	uid, ok := actor(c)
	if !ok {
		return
	}
	a, err := h.service.CompleteVerification(c.Request.Context(), aid, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(a, "Document verification completed"))
}

func (h *DocumentHandler) Summary(c *gin.Context) {
	aid, ok := idParam(c, "id")
	if !ok {
		return
	}
	sum, err := h.service.Summary(c.Request.Context(), aid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(sum))
}

func (h *DocumentHandler) History(c *gin.Context) {
	did, ok := idParam(c, "document_id")
	if !ok {
		return
	}
	list, err := h.service.History(c.Request.Context(), did)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(list))
}

// fileInfo accepts either a multipart "file" upload, stored through the blob
// store, or a JSON body describing an already stored object.
func (h *DocumentHandler) fileInfo(c *gin.Context, assignmentID uint) (document.FileInfo, bool) {
	if fh, err := c.FormFile("file"); err == nil {
		if h.blobs == nil {
			c.JSON(http.StatusBadRequest, response.Fail("file uploads are not configured"))
			return document.FileInfo{}, false
		}
		f, err := fh.Open()
		if err != nil {
			badInput(c, err)
			return document.FileInfo{}, false
		}
		defer f.Close()
		contentType := fh.Header.Get("Content-Type")
		url, err := h.blobs.Put(c.Request.Context(), storage.ObjectName(assignmentID, fh.Filename), contentType, f, fh.Size)
		if err != nil {
			writeError(c, err)
			return document.FileInfo{}, false
		}
		return document.FileInfo{
			FileName:       fh.Filename,
			FileURL:        url,
			FileSize:       fh.Size,
			MimeType:       contentType,
			DocumentNumber: c.PostForm("document_number"),
		}, true
	}

	var info document.FileInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		badInput(c, err)
		return info, false
	}
	return info, true
}

var _ BlobStore = (*storage.Store)(nil)
