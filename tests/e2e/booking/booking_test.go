//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/handler/dto/request"
	resdto "github.com/manojshendge/gym-class-booking/internal/handler/dto/response"
	"github.com/manojshendge/gym-class-booking/tests/common/dbtest"
	"github.com/manojshendge/gym-class-booking/tests/common/httptest"
	"github.com/manojshendge/gym-class-booking/tests/e2e"
	jwtHelper "github.com/manojshendge/gym-class-booking/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper

	yogaClassID uuid.UUID
	smallSlotID uuid.UUID // 月曜18:00、定員2に上書きされた枠
	bigSlotID   uuid.UUID // 月曜07:00、クラス定員20
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.GetBaseDB(), s.Config.JWT)
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.yogaClassID = dbtest.GetClassID(s.T(), s.DB, "Power Yoga")
	s.smallSlotID = dbtest.GetSlotID(s.T(), s.DB, s.yogaClassID, "18:00")
	s.bigSlotID = dbtest.GetSlotID(s.T(), s.DB, s.yogaClassID, "07:00")
}

// 枠の曜日（月曜）に合う未来の日付を返す
func nextMonday() string {
	now := time.Now().UTC()
	offset := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func (s *bookingSuite) reserve(token string, classID, slotID uuid.UUID, date string) *resdto.BookingResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		request.CreateBookingRequest{ClassID: classID, SlotID: slotID, Date: date}, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var res resdto.BookingResponse
	httptest.DecodeJSON(s.T(), w, &res)
	return &res
}

func (s *bookingSuite) TestReserveFlow() {
	s.Run("予約から取得・一覧・キャンセルまでの一連の流れ", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "member@example.com")
		date := nextMonday()

		created := s.reserve(token, s.yogaClassID, s.bigSlotID, date)
		require.Equal(t, "confirmed", created.Status)
		require.Equal(t, "Power Yoga", created.ClassName)
		require.Equal(t, date, created.Date)

		// 取得
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var fetched resdto.BookingResponse
		httptest.DecodeJSON(t, w, &fetched)
		opts := []cmp.Option{
			cmpopts.EquateApproxTime(time.Second),
		}
		if diff := cmp.Diff(created, &fetched, opts...); diff != "" {
			t.Errorf("booking mismatch (-created +fetched):\n%s", diff)
		}

		// 一覧
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var list []resdto.BookingResponse
		httptest.DecodeJSON(t, w, &list)
		require.Len(t, list, 1)
		require.Equal(t, created.ID, list[0].ID)

		// キャンセル
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cancelled resdto.BookingResponse
		httptest.DecodeJSON(t, w, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
	})

	s.Run("同じ枠・同じ日付の二重予約は409", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "member@example.com")
		date := nextMonday()

		s.reserve(token, s.yogaClassID, s.bigSlotID, date)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ClassID: s.yogaClassID, SlotID: s.bigSlotID, Date: date}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("キャンセル後は同じ枠を再予約できる", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "member@example.com")
		date := nextMonday()

		created := s.reserve(token, s.yogaClassID, s.bigSlotID, date)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		rebooked := s.reserve(token, s.yogaClassID, s.bigSlotID, date)
		require.NotEqual(t, created.ID, rebooked.ID)
	})

	s.Run("枠の曜日と合わない日付は422", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "member@example.com")

		// 月曜枠に火曜の日付
		tuesday, err := time.Parse("2006-01-02", nextMonday())
		require.NoError(t, err)
		date := tuesday.AddDate(0, 0, 1).Format("2006-01-02")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ClassID: s.yogaClassID, SlotID: s.bigSlotID, Date: date}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("過去の日付は422", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "member@example.com")

		// 過去の月曜
		monday, err := time.Parse("2006-01-02", nextMonday())
		require.NoError(t, err)
		date := monday.AddDate(0, 0, -14).Format("2006-01-02")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ClassID: s.yogaClassID, SlotID: s.bigSlotID, Date: date}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestCapacity() {
	s.Run("定員2の枠は3人目が409になる", func() {
		t := s.T()
		date := nextMonday()

		first := s.jwtHelper.CreateAndLogin(t, s.Router, "first@example.com")
		second := s.jwtHelper.CreateAndLogin(t, s.Router, "second@example.com")
		third := s.jwtHelper.CreateAndLogin(t, s.Router, "third@example.com")

		s.reserve(first, s.yogaClassID, s.smallSlotID, date)
		s.reserve(second, s.yogaClassID, s.smallSlotID, date)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ClassID: s.yogaClassID, SlotID: s.smallSlotID, Date: date}, third)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("キャンセルで空いた席は再び予約できる", func() {
		t := s.T()
		date := nextMonday()

		first := s.jwtHelper.CreateAndLogin(t, s.Router, "first@example.com")
		second := s.jwtHelper.CreateAndLogin(t, s.Router, "second@example.com")
		third := s.jwtHelper.CreateAndLogin(t, s.Router, "third@example.com")

		kept := s.reserve(first, s.yogaClassID, s.smallSlotID, date)
		_ = kept
		released := s.reserve(second, s.yogaClassID, s.smallSlotID, date)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+released.ID.String(), nil, second)
		require.Equal(t, http.StatusOK, w.Code)

		s.reserve(third, s.yogaClassID, s.smallSlotID, date)
	})

	s.Run("最後の1席への同時予約は1件だけ成功する", func() {
		t := s.T()
		date := nextMonday()

		opener := s.jwtHelper.CreateAndLogin(t, s.Router, "opener@example.com")
		s.reserve(opener, s.yogaClassID, s.smallSlotID, date)

		// 残り1席を5人で取り合う
		const contenders = 5
		tokens := make([]string, contenders)
		for i := range contenders {
			tokens[i] = s.jwtHelper.CreateAndLogin(t, s.Router, fmt.Sprintf("racer%d@example.com", i))
		}

		var wg sync.WaitGroup
		codes := make([]int, contenders)
		for i := range contenders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
					request.CreateBookingRequest{ClassID: s.yogaClassID, SlotID: s.smallSlotID, Date: date}, tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "成功は1件だけのはず: %v", codes)
		require.Equal(t, contenders-1, conflicted, "残りは409のはず: %v", codes)

		// DB上も confirmed はちょうど定員分
		var confirmed int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT COUNT(*) FROM bookings WHERE schedule_slot_id = $1 AND booking_date = $2 AND status = 'confirmed'",
			s.smallSlotID, date).Scan(&confirmed)
		require.NoError(t, err)
		require.Equal(t, 2, confirmed)
	})
}

func (s *bookingSuite) TestAvailabilityReflectsBookings() {
	s.Run("予約すると残席が減り、キャンセルで戻る", func() {
		t := s.T()
		date := nextMonday()
		url := "/api/classes/" + s.yogaClassID.String() + "/availability?date=" + date

		remaining := func() int32 {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var items []resdto.SlotAvailabilityResponse
			httptest.DecodeJSON(t, w, &items)
			for _, it := range items {
				if it.SlotID == s.smallSlotID {
					return it.RemainingSeats
				}
			}
			t.Fatalf("slot %s not in availability response", s.smallSlotID)
			return -1
		}

		require.Equal(t, int32(2), remaining())

		token := s.jwtHelper.CreateAndLogin(t, s.Router, "member@example.com")
		created := s.reserve(token, s.yogaClassID, s.smallSlotID, date)
		require.Equal(t, int32(1), remaining())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, int32(2), remaining())
	})
}

func (s *bookingSuite) TestOwnership() {
	s.Run("他人の予約は取得できずキャンセルもできない", func() {
		t := s.T()
		date := nextMonday()

		owner := s.jwtHelper.CreateAndLogin(t, s.Router, "owner@example.com")
		other := s.jwtHelper.CreateAndLogin(t, s.Router, "other@example.com")

		created := s.reserve(owner, s.yogaClassID, s.bigSlotID, date)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, other)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+created.ID.String(), nil, other)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
