package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pond/internal/delivery/http/middleware"
	"pond/internal/delivery/http/validator"
	"pond/internal/domain/entity"
	"pond/internal/domain/repository"
	mockUsecase "pond/internal/mocks/usecase"
	"pond/internal/usecase"

	"github.com/labstack/echo/v4"
)

func newFishTestContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder, *mockUsecase.MockFishUsecase, *FishHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := mockUsecase.NewMockFishUsecase(t)

	return c, rec, uc, NewFishHandler(uc)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestFishHandler_List_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/fish", nil)
	c, rec, uc, h := newFishTestContext(t, req)

	uc.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(params repository.ListFishParams) bool {
			return params.Limit == 50 &&
				!params.Random &&
				params.IsVisible != nil && *params.IsVisible &&
				params.Deleted != nil && !*params.Deleted
		})).
		Return([]*entity.Fish{{ID: uuid.New(), Artist: "Someone"}}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"artist":"Someone"`)
}

func TestFishHandler_List_ParsesQueryParams(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/fish?orderBy=hotScore&order=asc&limit=10&random=true&userId="+userID.String(), nil)
	c, rec, uc, h := newFishTestContext(t, req)

	uc.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(params repository.ListFishParams) bool {
			return params.OrderBy == "hotScore" &&
				params.Ascending &&
				params.Limit == 10 &&
				params.Random &&
				params.UserID != nil && *params.UserID == userID
		})).
		Return([]*entity.Fish{}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestFishHandler_List_InvalidLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/fish?limit=banana", nil)
	c, rec, _, h := newFishTestContext(t, req)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid limit")
}

func TestFishHandler_Get_Success(t *testing.T) {
	fishID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/fish/"+fishID.String(), nil)
	c, rec, uc, h := newFishTestContext(t, req)
	c.SetParamNames("id")
	c.SetParamValues(fishID.String())

	uc.EXPECT().
		Get(mock.Anything, fishID.String()).
		Return(&entity.Fish{ID: fishID, Artist: "Someone"}, nil)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fishID.String())
}

func TestFishHandler_Vote_Success(t *testing.T) {
	fishID := uuid.New()
	c, rec, uc, h := newFishTestContext(t,
		jsonRequest(http.MethodPost, "/api/vote", `{"fishId":"`+fishID.String()+`","vote":"up"}`))

	uc.EXPECT().
		Vote(mock.Anything, &usecase.VoteInput{FishID: fishID.String(), Vote: "up"}).
		Return(&entity.Fish{ID: fishID, Upvotes: 1}, nil)

	require.NoError(t, h.Vote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"upvotes":1`)
}

func TestFishHandler_Vote_RejectsUnknownDirection(t *testing.T) {
	c, rec, _, h := newFishTestContext(t,
		jsonRequest(http.MethodPost, "/api/vote", `{"fishId":"some-id","vote":"sideways"}`))

	require.NoError(t, h.Vote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newUploadRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "doodle.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploadfish", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestFishHandler_Upload_Success(t *testing.T) {
	userID := uuid.New()
	req := newUploadRequest(t, map[string]string{
		"artist": "Someone",
		"userId": userID.String(),
	}, []byte("png-bytes"))
	c, rec, uc, h := newFishTestContext(t, req)

	uc.EXPECT().
		Upload(mock.Anything, mock.MatchedBy(func(input *usecase.UploadFishInput) bool {
			return string(input.Image) == "png-bytes" &&
				input.Artist == "Someone" &&
				input.UserID == userID.String() &&
				!input.NeedsModeration
		})).
		Return(&entity.Fish{ID: uuid.New(), Artist: "Someone", UserID: userID}, nil)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"artist":"Someone"`)
}

func TestFishHandler_Upload_SessionOverridesFormOwner(t *testing.T) {
	sessionUserID := uuid.New()
	req := newUploadRequest(t, map[string]string{
		"userId": uuid.NewString(),
	}, []byte("png-bytes"))
	c, rec, uc, h := newFishTestContext(t, req)
	c.Set(middleware.ContextKeyUserID, sessionUserID)

	uc.EXPECT().
		Upload(mock.Anything, mock.MatchedBy(func(input *usecase.UploadFishInput) bool {
			return input.UserID == sessionUserID.String()
		})).
		Return(&entity.Fish{ID: uuid.New(), UserID: sessionUserID}, nil)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFishHandler_Upload_MissingImage(t *testing.T) {
	req := newUploadRequest(t, map[string]string{"artist": "Someone"}, nil)
	c, rec, _, h := newFishTestContext(t, req)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "image file is required")
}

func TestFishHandler_Report_Success(t *testing.T) {
	fishID := uuid.New()
	c, rec, uc, h := newFishTestContext(t,
		jsonRequest(http.MethodPost, "/api/report",
			`{"fishId":"`+fishID.String()+`","reason":"not a fish","url":"https://pond.example.com/fish"}`))

	uc.EXPECT().
		Report(mock.Anything, &usecase.ReportInput{
			FishID:    fishID.String(),
			Reason:    "not a fish",
			UserAgent: "",
			URL:       "https://pond.example.com/fish",
		}).
		Return(nil)

	require.NoError(t, h.Report(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestFishHandler_Report_FallsBackToHeaderUserAgent(t *testing.T) {
	fishID := uuid.New()
	req := jsonRequest(http.MethodPost, "/api/report",
		`{"fishId":"`+fishID.String()+`","reason":"spam"}`)
	req.Header.Set("User-Agent", "pond-test-agent/1.0")
	c, rec, uc, h := newFishTestContext(t, req)

	uc.EXPECT().
		Report(mock.Anything, mock.MatchedBy(func(input *usecase.ReportInput) bool {
			return input.UserAgent == "pond-test-agent/1.0"
		})).
		Return(nil)

	require.NoError(t, h.Report(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
