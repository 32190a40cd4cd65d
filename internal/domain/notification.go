package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"geoalert/pkg/e"
)

type NotificationKind string

const (
	KindThreat     NotificationKind = "threat"
	KindInfo       NotificationKind = "info"
	KindEvacuation NotificationKind = "evacuation"
	KindGeneral    NotificationKind = "general"
)

const (
	scopeGeoPrefix  = "geo:"
	scopeUserPrefix = "user:"
)

// Notification is created once at fan-out time and never mutated.
type Notification struct {
	ID               string           `json:"id"`
	SourceReportID   string           `json:"source_report_id"`
	SourceResponseID string           `json:"source_response_id,omitempty"`
	RecipientScope   string           `json:"recipient_scope"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	Kind             NotificationKind `json:"kind"`
	CreatedAt        time.Time        `json:"created_at"`
}

type GeoScope struct {
	Center   Point
	RadiusKm float64
}

func (s GeoScope) String() string {
	return fmt.Sprintf("%s%g,%g,%g", scopeGeoPrefix, s.Center.Lat, s.Center.Lng, s.RadiusKm)
}

func UserScope(userID string) string {
	return scopeUserPrefix + userID
}

// UserOf returns the recipient id of a user-scoped notification.
func (n *Notification) UserOf() (string, bool) {
	return strings.CutPrefix(n.RecipientScope, scopeUserPrefix)
}

// ParseGeoScope parses "geo:<lat>,<lng>,<radiusKm>".
func ParseGeoScope(raw string) (GeoScope, error) {
	body, ok := strings.CutPrefix(raw, scopeGeoPrefix)
	if !ok {
		return GeoScope{}, e.Validation("recipient_scope", "not a geo scope")
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return GeoScope{}, e.Validation("recipient_scope", "want lat,lng,radius")
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return GeoScope{}, e.Validation("recipient_scope", err.Error())
		}
		vals[i] = v
	}
	s := GeoScope{Center: Point{Lat: vals[0], Lng: vals[1]}, RadiusKm: vals[2]}
	if err := s.Center.Validate(); err != nil {
		return GeoScope{}, err
	}
	if s.RadiusKm <= 0 {
		return GeoScope{}, e.Validation("recipient_scope", "radius must be positive")
	}
	return s, nil
}

// FeedItem is a notification as seen by one recipient.
type FeedItem struct {
	Notification
	Read bool `json:"read"`
}

type Feed struct {
	Items  []FeedItem `json:"items"`
	Unread int        `json:"unread"`
}
