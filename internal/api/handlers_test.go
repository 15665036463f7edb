package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/hydration/internal/api"
	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/internal/service/mocks"
	"github.com/limbo/hydration/internal/tracker"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func newMockedServer(t *testing.T) (*mocks.MockIntakeServiceI, http.Handler) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockIntakeServiceI(ctrl)
	serv := api.New(&api.ServicesList{IntakeService: mock})
	return mock, serv.Handler()
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := sonic.ConfigDefault.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestNavigateHandler(t *testing.T) {
	mock, h := newMockedServer(t)
	t.Run("home", func(t *testing.T) {
		mock.EXPECT().
			Navigate(gomock.Any(), &service.NavigateRequest{Screen: "Home"}).
			Return(&entity.ScreenView{Screen: "Home", Home: &entity.HomeView{WaterInput: "0"}}, nil)
		rr := doRequest(t, h, http.MethodGet, "/api/v1/screens/Home", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		view := decode[entity.ScreenView](t, rr)
		assert.Equal(t, "Home", view.Screen)
		require.NotNil(t, view.Home)
	})
	t.Run("unknown screen", func(t *testing.T) {
		mock.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrScreenNotFound)
		rr := doRequest(t, h, http.MethodGet, "/api/v1/screens/Settings", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("service error", func(t *testing.T) {
		mock.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil, errors.New("mocked error"))
		rr := doRequest(t, h, http.MethodGet, "/api/v1/screens/Home", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSetWaterInputHandler(t *testing.T) {
	mock, h := newMockedServer(t)
	t.Run("set", func(t *testing.T) {
		mock.EXPECT().SetWaterInput(gomock.Any(), "abc").Return(&entity.HomeView{WaterInput: "0"}, nil)
		rr := doRequest(t, h, http.MethodPut, "/api/v1/home/water", api.TextInputRequest{Text: "abc"})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "0", decode[entity.HomeView](t, rr).WaterInput)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := doRequest(t, h, http.MethodPut, "/api/v1/home/water", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("service error", func(t *testing.T) {
		mock.EXPECT().SetWaterInput(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
		rr := doRequest(t, h, http.MethodPut, "/api/v1/home/water", api.TextInputRequest{Text: "1"})
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSelectDrinkHandler(t *testing.T) {
	mock, h := newMockedServer(t)
	testCases := []struct {
		Desc            string
		Path            string
		Status          int
		MockPrepareFunc func()
	}{
		{
			Desc:   "selected",
			Path:   "/api/v1/home/drinks/0/select",
			Status: http.StatusOK,
			MockPrepareFunc: func() {
				mock.EXPECT().SelectDrink(gomock.Any(), 0).Return(&entity.HomeView{}, nil)
			},
		},
		{
			Desc:   "unexist drink",
			Path:   "/api/v1/home/drinks/42/select",
			Status: http.StatusNotFound,
			MockPrepareFunc: func() {
				mock.EXPECT().SelectDrink(gomock.Any(), 42).Return(nil, errorvalues.ErrDrinkNotFound)
			},
		},
		{
			Desc:            "invalid index",
			Path:            "/api/v1/home/drinks/coffee/select",
			Status:          http.StatusBadRequest,
			MockPrepareFunc: func() {},
		},
		{
			Desc:   "service error",
			Path:   "/api/v1/home/drinks/1/select",
			Status: http.StatusInternalServerError,
			MockPrepareFunc: func() {
				mock.EXPECT().SelectDrink(gomock.Any(), 1).Return(nil, errors.New("mocked error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			rr := doRequest(t, h, http.MethodPost, tc.Path, nil)
			assert.Equal(t, tc.Status, rr.Code)
		})
	}
}

func TestRecordAndResetHandlers(t *testing.T) {
	mock, h := newMockedServer(t)
	t.Run("recorded", func(t *testing.T) {
		mock.EXPECT().RecordIntake(gomock.Any()).Return(&entity.IntakeRecord{WaterMl: 250, DrinkName: "None", Caffeine: entity.Mg(0)}, nil)
		rr := doRequest(t, h, http.MethodPost, "/api/v1/home/records", nil)
		assert.Equal(t, http.StatusCreated, rr.Code)
		record := decode[entity.IntakeRecord](t, rr)
		assert.Equal(t, 250, record.WaterMl)
	})
	t.Run("record error", func(t *testing.T) {
		mock.EXPECT().RecordIntake(gomock.Any()).Return(nil, errors.New("mocked error"))
		rr := doRequest(t, h, http.MethodPost, "/api/v1/home/records", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
	t.Run("reset", func(t *testing.T) {
		mock.EXPECT().Reset(gomock.Any()).Return(nil)
		rr := doRequest(t, h, http.MethodDelete, "/api/v1/home/records", nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("reset error", func(t *testing.T) {
		mock.EXPECT().Reset(gomock.Any()).Return(errors.New("mocked error"))
		rr := doRequest(t, h, http.MethodDelete, "/api/v1/home/records", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSelectDateHandler(t *testing.T) {
	mock, h := newMockedServer(t)
	t.Run("selected", func(t *testing.T) {
		mock.EXPECT().
			SelectDate(gomock.Any(), &service.SelectDateRequest{Date: "2024-05-01"}).
			Return(&entity.CalendarView{SelectedDate: "2024-05-01", MarkedDates: map[string]entity.DateMarker{}}, nil)
		rr := doRequest(t, h, http.MethodPut, "/api/v1/calendar/selected", api.DateRequest{Date: "2024-05-01"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("invalid date", func(t *testing.T) {
		mock.EXPECT().SelectDate(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrInvalidDate)
		rr := doRequest(t, h, http.MethodPut, "/api/v1/calendar/selected", api.DateRequest{Date: "May 1st"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := doRequest(t, h, http.MethodPut, "/api/v1/calendar/selected", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMiddleware(t *testing.T) {
	_, h := newMockedServer(t)
	t.Run("request id header", func(t *testing.T) {
		rr := doRequest(t, h, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/home/records", nil)
		req.Header.Set("Origin", "http://localhost:8081")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
	t.Run("logger in context", func(t *testing.T) {
		var gotID string
		serv := api.New(&api.ServicesList{})
		handler := serv.RequestIDMiddleware(serv.SettingUpLoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = api.GetRequestIDFromCtx(r.Context())
			assert.NotNil(t, api.GetLoggerFromCtx(r.Context()))
		})))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, gotID)
	})
}

func TestHandlersIntegrational(t *testing.T) {
	state := tracker.New(tracker.WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	}))
	h := api.New(&api.ServicesList{IntakeService: service.NewIntakeService(state)}).Handler()

	rr := doRequest(t, h, http.MethodPut, "/api/v1/calendar/selected", api.DateRequest{Date: "2024-05-01"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, h, http.MethodPost, "/api/v1/home/drinks", api.AddDrinkRequest{Name: "Mate", Caffeine: "65"})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, entity.DrinkOption{Name: "Mate", Caffeine: entity.Mg(65)}, decode[entity.DrinkOption](t, rr))

	rr = doRequest(t, h, http.MethodPut, "/api/v1/home/water", api.TextInputRequest{Text: "300"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, h, http.MethodGet, "/api/v1/home/water-needed", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 750, decode[api.WaterNeededResponse](t, rr).WaterNeededMl)

	rr = doRequest(t, h, http.MethodPost, "/api/v1/home/records", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	record := decode[entity.IntakeRecord](t, rr)
	assert.Equal(t, "Mate", record.DrinkName)
	assert.Equal(t, entity.Mg(65), record.Caffeine)

	rr = doRequest(t, h, http.MethodPut, "/api/v1/home/weight", api.TextInputRequest{Text: "70"})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, h, http.MethodPost, "/api/v1/home/target", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2100, decode[entity.WaterTarget](t, rr).TargetMl)

	rr = doRequest(t, h, http.MethodGet, "/api/v1/screens/Home", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	home := decode[entity.ScreenView](t, rr).Home
	require.NotNil(t, home)
	assert.Equal(t, entity.RunningTotals{TotalWaterMl: 300, TotalCaffeine: entity.Mg(65)}, home.Totals)
	assert.Equal(t, 2100, home.WaterTargetMl)

	rr = doRequest(t, h, http.MethodPost, "/api/v1/calendar/press", api.DateRequest{Date: "2024-05-09"})
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, h, http.MethodGet, "/api/v1/screens/WaterInfo", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	calendar := decode[entity.ScreenView](t, rr).Calendar
	require.NotNil(t, calendar)
	assert.Equal(t, map[string]entity.DateMarker{
		"2024-05-01": {Selected: true, Marked: true, DotColor: "green"},
	}, calendar.MarkedDates)

	rr = doRequest(t, h, http.MethodDelete, "/api/v1/home/records", nil)
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = doRequest(t, h, http.MethodGet, "/api/v1/home", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	home2 := decode[entity.HomeView](t, rr)
	assert.Empty(t, home2.Records)
	assert.Equal(t, []string{"No records found"}, home2.RecordLines)

	rr = doRequest(t, h, http.MethodGet, "/api/v1/calendar", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, decode[entity.CalendarView](t, rr).MarkedDates, "2024-05-01")
}
