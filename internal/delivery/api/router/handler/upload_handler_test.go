package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"autohub/internal/delivery/api/middleware"
	domainerrors "autohub/internal/domain/errors"
	mockUc "autohub/internal/mocks/usecase"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, folder, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("folder", folder))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUploadHandler_UploadImage(t *testing.T) {
	uploadUC := mockUc.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	session := ownerSession(uuid.New())

	uploadUC.EXPECT().UploadImage(mock.Anything, session, mock.MatchedBy(func(in *usecase.UploadInput) bool {
		body, err := io.ReadAll(in.Body)

		return err == nil && in.Folder == usecase.UploadFolderShops && in.ContentType == "image/png" &&
			in.Size == 4 && string(body) == "\x89PNG"
	})).Return(&usecase.UploadOutput{URL: "http://localhost:8080/images/shops/abc.png"}, nil)

	body, contentType := multipartBody(t, "shops", "image/png", []byte("\x89PNG"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetSession(c, session)

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "images/shops/abc.png")
}

func TestUploadHandler_MissingFile(t *testing.T) {
	uploadUC := mockUc.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})
	e := newTestEcho()

	c, rec := newRequest(e, http.MethodPost, "/api/v1/uploads", `{}`, customerSession())

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_ServeImage(t *testing.T) {
	uploadUC := mockUc.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: newDiscardLogger()})
	e := newTestEcho()

	uploadUC.EXPECT().OpenImage(mock.Anything, "profiles/me.jpg").
		Return(io.NopCloser(strings.NewReader("jpeg-bytes")), "image/jpeg", nil)
	uploadUC.EXPECT().OpenImage(mock.Anything, "profiles/missing.jpg").
		Return(nil, "", domainerrors.ErrNotFound)

	c, rec := newRequest(e, http.MethodGet, "/images/profiles/me.jpg", "", nil)
	c.SetParamNames("*")
	c.SetParamValues("profiles/me.jpg")

	require.NoError(t, h.ServeImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())

	c, rec = newRequest(e, http.MethodGet, "/images/profiles/missing.jpg", "", nil)
	c.SetParamNames("*")
	c.SetParamValues("profiles/missing.jpg")

	require.NoError(t, h.ServeImage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
