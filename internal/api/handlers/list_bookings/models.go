package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(accountID int64, query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		AccountID: accountID,
		Query:     query.Get("q"),
		Sort:      query.Get("sort"),
		Order:     query.Get("order"),
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if resourceIDStr := query.Get("resourceId"); resourceIDStr != "" {
		resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ResourceID = &resourceID
	}

	from, err := parseBound(query.Get("from"))
	if err != nil {
		return nil, err
	}
	req.From = from

	to, err := parseBound(query.Get("to"))
	if err != nil {
		return nil, err
	}
	req.To = to

	return req, nil
}

// parseBound принимает RFC3339 или дату YYYY-MM-DD (полночь UTC)
func parseBound(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
