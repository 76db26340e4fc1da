//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"lendit/internal/handler/dto/request"
	"lendit/internal/handler/dto/response"
	"lendit/tests/common/dbtest"
	"lendit/tests/common/httptest"
	"lendit/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	usersURL    = "/users"
	itemsURL    = "/items"
	bookingsURL = "/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func boolPtr(b bool) *bool { return &b }

func (s *BookingSuite) createUser(name, email string) int64 {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL,
		request.CreateUserRequest{Name: name, Email: email}, 0)
	require.Equal(t, http.StatusOK, w.Code, "failed to create user: %s", w.Body.String())

	var resp response.UserResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp.ID
}

func (s *BookingSuite) createItem(ownerID int64, name string, available bool) int64 {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
		request.CreateItemRequest{Name: name, Description: name + " description", Available: boolPtr(available)}, ownerID)
	require.Equal(t, http.StatusOK, w.Code, "failed to create item: %s", w.Body.String())

	var resp response.ItemResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp.ID
}

func (s *BookingSuite) createBooking(bookerID, itemID int64, start, end time.Time) response.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
		request.CreateBookingRequest{ItemID: itemID, Start: start, End: end}, bookerID)
	require.Equal(t, http.StatusOK, w.Code, "failed to create booking: %s", w.Body.String())

	var resp response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp
}

// =============================================================================
// TestBookingLifecycle - create, approve, reject
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("booking is created waiting and approved by the owner", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Cordless drill", true)

		start := time.Now().Add(24 * time.Hour)
		created := s.createBooking(bookerID, itemID, start, start.Add(24*time.Hour))
		require.Equal(t, "WAITING", created.Status)
		require.Equal(t, bookerID, created.Booker.ID)
		require.Equal(t, itemID, created.Item.ID)

		url := fmt.Sprintf("%s/%d?approved=true", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, ownerID)

		var approved response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		require.Equal(t, "APPROVED", approved.Status)

		// A second decision on the same booking must fail.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, ownerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "cannot change booking status: APPROVED")
	})

	s.Run("concurrent decisions settle exactly one winner", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Generator", true)

		start := time.Now().Add(24 * time.Hour)
		created := s.createBooking(bookerID, itemID, start, start.Add(24*time.Hour))

		approveURL := fmt.Sprintf("%s/%d?approved=true", bookingsURL, created.ID)
		rejectURL := fmt.Sprintf("%s/%d?approved=false", bookingsURL, created.ID)

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for _, url := range []string{approveURL, rejectURL} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, ownerID)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var ok, conflict int
		for code := range codes {
			switch code {
			case http.StatusOK:
				ok++
			case http.StatusBadRequest:
				conflict++
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, ok, "exactly one decision must win")
		require.Equal(t, 1, conflict, "the losing decision must see an already decided booking")
	})

	s.Run("owner rejects a booking", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Ladder", true)

		start := time.Now().Add(24 * time.Hour)
		created := s.createBooking(bookerID, itemID, start, start.Add(24*time.Hour))

		url := fmt.Sprintf("%s/%d?approved=false", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, ownerID)

		var rejected response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rejected)
		require.Equal(t, "REJECTED", rejected.Status)
	})

	s.Run("booker cannot decide and stranger cannot see the booking", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		strangerID := s.createUser("Stranger", "stranger@example.com")
		itemID := s.createItem(ownerID, "Tent", true)

		start := time.Now().Add(24 * time.Hour)
		created := s.createBooking(bookerID, itemID, start, start.Add(24*time.Hour))

		url := fmt.Sprintf("%s/%d?approved=true", bookingsURL, created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, nil, bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item not found")

		getURL := fmt.Sprintf("%s/%d", bookingsURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, strangerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")

		// Both sides of the booking can read it.
		for _, viewer := range []int64{ownerID, bookerID} {
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, viewer)
			var resp response.BookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
			require.Equal(t, created.ID, resp.ID)
		}
	})

	s.Run("booking guards reject bad requests", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Unavailable saw", false)

		start := time.Now().Add(24 * time.Hour)
		end := start.Add(24 * time.Hour)

		// Unavailable item.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, Start: start, End: end}, bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Item not available")

		availableID := s.createItem(ownerID, "Saw", true)

		// Owner booking own item.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: availableID, Start: start, End: end}, ownerID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User is owner")

		// Period in the past.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: availableID, Start: time.Now().Add(-24 * time.Hour), End: end}, bookerID)
		require.Equal(t, http.StatusBadRequest, w.Code)

		// Unknown user.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: availableID, Start: start, End: end}, 9999)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")

		// Missing sharer header.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: availableID, Start: start, End: end}, 0)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "X-Sharer-User-Id header is required")
	})
}

// =============================================================================
// TestBookingListing - state filters and pagination
// =============================================================================

func (s *BookingSuite) TestBookingListing() {
	s.Run("state filters partition the booking history", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Projector", true)

		now := time.Now()
		pastID := dbtest.CreateBooking(t, s.DB, itemID, bookerID,
			now.Add(-72*time.Hour), now.Add(-48*time.Hour), "APPROVED")
		currentID := dbtest.CreateBooking(t, s.DB, itemID, bookerID,
			now.Add(-1*time.Hour), now.Add(24*time.Hour), "APPROVED")
		rejectedID := dbtest.CreateBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "REJECTED")

		future := s.createBooking(bookerID, itemID, now.Add(72*time.Hour), now.Add(96*time.Hour))

		cases := []struct {
			state string
			want  []int64
		}{
			{state: "ALL", want: []int64{future.ID, rejectedID, currentID, pastID}},
			{state: "PAST", want: []int64{pastID}},
			{state: "CURRENT", want: []int64{currentID}},
			{state: "FUTURE", want: []int64{future.ID, rejectedID}},
			{state: "WAITING", want: []int64{future.ID}},
			{state: "REJECTED", want: []int64{rejectedID}},
		}

		for _, tc := range cases {
			url := bookingsURL + "?state=" + tc.state
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, bookerID)

			var resp []response.BookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)

			got := make([]int64, len(resp))
			for i, b := range resp {
				got[i] = b.ID
			}
			require.Equal(t, tc.want, got, "state %s", tc.state)

			// The owner sees the same set through the owner listing.
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/owner?state="+tc.state, nil, ownerID)
			resp = nil
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
			require.Len(t, resp, len(tc.want), "owner listing for state %s", tc.state)
		}
	})

	s.Run("pagination clamps and slices", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Bike", true)

		now := time.Now()
		for i := range 3 {
			s.createBooking(bookerID, itemID,
				now.Add(time.Duration(24*(i+1))*time.Hour),
				now.Add(time.Duration(24*(i+1))*time.Hour+12*time.Hour))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?from=1&size=1", nil, bookerID)
		var resp []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp, 1)

		// Negative offsets and zero sizes fall back to the defaults.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?from=-5&size=0", nil, bookerID)
		resp = nil
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp, 3)
	})

	s.Run("unsupported state value fails loudly", func() {
		t := s.T()

		bookerID := s.createUser("Booker", "booker@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=FINISHED", nil, bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Unknown state: FINISHED")
	})
}

// =============================================================================
// TestComments - eligibility and item detail projection
// =============================================================================

func (s *BookingSuite) TestComments() {
	s.Run("borrower with a finished booking comments on the item", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Camera", true)

		now := time.Now()
		dbtest.CreateBooking(t, s.DB, itemID, bookerID,
			now.Add(-72*time.Hour), now.Add(-48*time.Hour), "APPROVED")

		url := fmt.Sprintf("%s/%d/comment", itemsURL, itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateCommentRequest{Text: "Sharp lens, easy to use"}, bookerID)

		var created response.CommentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.Equal(t, "Booker", created.AuthorName)
		require.Equal(t, "Sharp lens, easy to use", created.Text)

		// The comment shows up on the item detail.
		itemURL := fmt.Sprintf("%s/%d", itemsURL, itemID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, itemURL, nil, bookerID)

		var detail response.ItemDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Len(t, detail.Comments, 1)
		require.Equal(t, created.ID, detail.Comments[0].ID)
	})

	s.Run("user without a finished booking cannot comment", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Camera", true)

		// Approved but still running.
		now := time.Now()
		dbtest.CreateBooking(t, s.DB, itemID, bookerID,
			now.Add(-1*time.Hour), now.Add(24*time.Hour), "APPROVED")

		url := fmt.Sprintf("%s/%d/comment", itemsURL, itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.CreateCommentRequest{Text: "Too early"}, bookerID)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "User has no finished booking for this item")
	})

	s.Run("owner sees last and next booking on the item detail", func() {
		t := s.T()

		ownerID := s.createUser("Owner", "owner@example.com")
		bookerID := s.createUser("Booker", "booker@example.com")
		itemID := s.createItem(ownerID, "Camera", true)

		now := time.Now()
		lastID := dbtest.CreateBooking(t, s.DB, itemID, bookerID,
			now.Add(-72*time.Hour), now.Add(-48*time.Hour), "APPROVED")
		nextID := dbtest.CreateBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")

		itemURL := fmt.Sprintf("%s/%d", itemsURL, itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemURL, nil, ownerID)

		var detail response.ItemDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.NotNil(t, detail.LastBooking)
		require.NotNil(t, detail.NextBooking)
		require.Equal(t, lastID, detail.LastBooking.ID)
		require.Equal(t, nextID, detail.NextBooking.ID)

		// The projection stays hidden from everyone else.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, itemURL, nil, bookerID)
		detail = response.ItemDetailResponse{}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Nil(t, detail.LastBooking)
		require.Nil(t, detail.NextBooking)
	})
}
