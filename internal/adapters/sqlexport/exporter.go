package sqlexport

import (
	"fmt"
	"io"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// Snapshot is the catalog content to export
type Snapshot struct {
	Users       []*entities.User
	Attractions []*entities.Attraction
	Events      []*entities.Event
	Offers      []*entities.Offer
	Restaurants []*entities.Restaurant
	Favorites   []*entities.UserFavorite
	Bookings    []*entities.UserBooking
	Itineraries []*entities.UserItinerary
}

// Exporter renders a Snapshot as PostgreSQL INSERT statements
type Exporter struct {
	dialect goqu.DialectWrapper
}

// NewExporter creates an exporter for the postgres dialect
func NewExporter() *Exporter {
	return &Exporter{dialect: goqu.Dialect("postgres")}
}

// Statements returns one INSERT per non-empty table, in dependency order.
// Passwords are never exported.
func (e *Exporter) Statements(s Snapshot) ([]string, error) {
	tables := []struct {
		name string
		rows []interface{}
	}{
		{"users", userRows(s.Users)},
		{"attractions", attractionRows(s.Attractions)},
		{"events", eventRows(s.Events)},
		{"offers", offerRows(s.Offers)},
		{"restaurants", restaurantRows(s.Restaurants)},
		{"user_favorites", favoriteRows(s.Favorites)},
		{"user_bookings", bookingRows(s.Bookings)},
		{"user_itinerary", itineraryRows(s.Itineraries)},
	}

	var statements []string
	for _, table := range tables {
		if len(table.rows) == 0 {
			continue
		}
		query, _, err := e.dialect.Insert(table.name).Rows(table.rows...).ToSQL()
		if err != nil {
			return nil, fmt.Errorf("failed to build insert for %s: %w", table.name, err)
		}
		statements = append(statements, query)
	}
	return statements, nil
}

// Write renders s to w, one statement per line
func (e *Exporter) Write(w io.Writer, s Snapshot) error {
	statements, err := e.Statements(s)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "-- yatraa catalog export\nBEGIN;\n"); err != nil {
		return err
	}
	for _, stmt := range statements {
		if _, err := fmt.Fprintf(w, "%s;\n", stmt); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "COMMIT;")
	return err
}

func userRows(users []*entities.User) []interface{} {
	rows := make([]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, goqu.Record{
			"id":                 u.ID,
			"username":           u.Username,
			"email":              u.Email,
			"name":               u.Name,
			"avatar":             nullString(u.Avatar),
			"preferred_language": u.PreferredLanguage,
			"created_at":         u.CreatedAt.UTC(),
		})
	}
	return rows
}

func attractionRows(attractions []*entities.Attraction) []interface{} {
	rows := make([]interface{}, 0, len(attractions))
	for _, a := range attractions {
		rows = append(rows, goqu.Record{
			"id":                a.ID,
			"name":              a.Name,
			"description":       a.Description,
			"short_description": a.ShortDescription,
			"category":          a.Category,
			"city":              a.City,
			"image_url":         a.ImageURL,
			"rating":            a.Rating,
			"review_count":      a.ReviewCount,
			"entry_fee":         a.EntryFee,
			"open_hours":        a.OpenHours,
			"location":          a.Location,
			"latitude":          nullString(a.Latitude),
			"longitude":         nullString(a.Longitude),
			"is_trending":       a.IsTrending,
			"is_featured":       a.IsFeatured,
		})
	}
	return rows
}

func eventRows(events []*entities.Event) []interface{} {
	rows := make([]interface{}, 0, len(events))
	for _, e := range events {
		rows = append(rows, goqu.Record{
			"id":          e.ID,
			"title":       e.Title,
			"description": e.Description,
			"category":    e.Category,
			"city":        e.City,
			"venue":       e.Venue,
			"image_url":   e.ImageURL,
			"start_date":  e.StartDate.UTC(),
			"end_date":    nullTime(e.EndDate),
			"price":       e.Price,
			"is_bookable": e.IsBookable,
			"organizer":   nullString(e.Organizer),
		})
	}
	return rows
}

func offerRows(offers []*entities.Offer) []interface{} {
	rows := make([]interface{}, 0, len(offers))
	for _, o := range offers {
		var pct interface{}
		if o.DiscountPercentage != nil {
			pct = *o.DiscountPercentage
		}
		rows = append(rows, goqu.Record{
			"id":                  o.ID,
			"title":               o.Title,
			"description":         o.Description,
			"category":            o.Category,
			"discount_percentage": pct,
			"discount_amount":     nullString(o.DiscountAmount),
			"code":                o.Code,
			"valid_until":         o.ValidUntil.UTC(),
			"is_active":           o.IsActive,
			"background_color":    o.BackgroundColor,
		})
	}
	return rows
}

func restaurantRows(restaurants []*entities.Restaurant) []interface{} {
	rows := make([]interface{}, 0, len(restaurants))
	for _, r := range restaurants {
		rows = append(rows, goqu.Record{
			"id":             r.ID,
			"name":           r.Name,
			"description":    r.Description,
			"cuisine":        r.Cuisine,
			"city":           r.City,
			"address":        r.Address,
			"image_url":      r.ImageURL,
			"rating":         r.Rating,
			"review_count":   r.ReviewCount,
			"price_range":    r.PriceRange,
			"open_hours":     r.OpenHours,
			"phone_number":   nullString(r.PhoneNumber),
			"latitude":       nullString(r.Latitude),
			"longitude":      nullString(r.Longitude),
			"is_recommended": r.IsRecommended,
		})
	}
	return rows
}

func favoriteRows(favorites []*entities.UserFavorite) []interface{} {
	rows := make([]interface{}, 0, len(favorites))
	for _, f := range favorites {
		rows = append(rows, goqu.Record{
			"id":            f.ID,
			"user_id":       f.UserID,
			"attraction_id": f.AttractionID,
			"created_at":    f.CreatedAt.UTC(),
		})
	}
	return rows
}

func bookingRows(bookings []*entities.UserBooking) []interface{} {
	rows := make([]interface{}, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, goqu.Record{
			"id":           b.ID,
			"user_id":      b.UserID,
			"event_id":     b.EventID,
			"status":       string(b.Status),
			"booking_date": b.BookingDate.UTC(),
		})
	}
	return rows
}

func itineraryRows(entries []*entities.UserItinerary) []interface{} {
	rows := make([]interface{}, 0, len(entries))
	for _, i := range entries {
		rows = append(rows, goqu.Record{
			"id":            i.ID,
			"user_id":       i.UserID,
			"attraction_id": i.AttractionID,
			"visit_date":    nullTime(i.VisitDate),
			"notes":         nullString(i.Notes),
			"created_at":    i.CreatedAt.UTC(),
		})
	}
	return rows
}

func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC()
}
