//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/manojshendge/gym-class-booking/internal/handler/api"
	resdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/response"
	"github.com/manojshendge/gym-class-booking/internal/pkg/errs"
	"github.com/manojshendge/gym-class-booking/internal/usecase/queries"
	"github.com/manojshendge/gym-class-booking/tests/common/builder"
	"github.com/manojshendge/gym-class-booking/tests/common/httptest"
	queriesmock "github.com/manojshendge/gym-class-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/classes", s.handler.ListClasses)
	s.router.GET("/classes/:id", s.handler.GetClass)
	s.router.GET("/classes/:id/slots", s.handler.ListClassSlots)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListClasses() {
	url := "/classes"

	s.Run("success: returns 200 OK with all classes", func() {
		yoga := builder.NewClassBuilder()
		hiit := builder.NewClassBuilder().With(func(b *builder.ClassBuilder) {
			b.Name = "HIIT Blast"
			b.Category = "Cardio"
			b.Instructor = "Jon Park"
		})

		s.mockQueries.EXPECT().ListClasses(gomock.Any()).
			Return([]*queries.ClassView{yoga.BuildView(), hiit.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Power Yoga", response[0].Name)
		s.Equal("HIIT Blast", response[1].Name)
	})

	s.Run("success: returns empty array when catalog is empty", func() {
		s.mockQueries.EXPECT().ListClasses(gomock.Any()).
			Return([]*queries.ClassView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 on read store failure", func() {
		s.mockQueries.EXPECT().ListClasses(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load classes")
	})
}

func (s *CatalogHandlerTestSuite) TestGetClass() {
	class := builder.NewClassBuilder()
	url := "/classes/" + class.ID.String()

	s.Run("success: returns 200 OK with class and slots", func() {
		view := class.BuildView()
		view.Slots = []queries.SlotView{
			builder.NewSlotBuilder(class.ID).BuildView(),
			builder.NewSlotBuilder(class.ID).With(func(b *builder.SlotBuilder) {
				b.Weekday = 3
				b.Start = "18:00"
				b.End = "19:00"
			}).WithCapacity(12).BuildView(),
		}

		s.mockQueries.EXPECT().GetClass(gomock.Any(), class.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(class.ID, response.ID)
		s.Len(response.Slots, 2)
		s.Require().NotNil(response.Slots[1].Capacity)
		s.Equal(int32(12), *response.Slots[1].Capacity)
	})

	s.Run("error: 400 Bad Request on malformed class ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid class ID format")
	})

	s.Run("error: 404 Not Found for unknown class", func() {
		s.mockQueries.EXPECT().GetClass(gomock.Any(), class.ID).
			Return(nil, errs.ErrClassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Class not found")
	})
}

func (s *CatalogHandlerTestSuite) TestListClassSlots() {
	class := builder.NewClassBuilder()
	url := "/classes/" + class.ID.String() + "/slots"

	s.Run("success: returns 200 OK with the class slots only", func() {
		view := class.BuildView()
		view.Slots = []queries.SlotView{builder.NewSlotBuilder(class.ID).BuildView()}

		s.mockQueries.EXPECT().GetClass(gomock.Any(), class.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(class.ID, response[0].ClassID)
	})

	s.Run("error: 404 Not Found for unknown class", func() {
		s.mockQueries.EXPECT().GetClass(gomock.Any(), class.ID).
			Return(nil, errs.ErrClassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Class not found")
	})
}
