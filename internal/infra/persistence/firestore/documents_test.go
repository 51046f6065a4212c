package firestore

import (
	"testing"
	"time"

	"supermall/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopDocument_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 30, 0, 123456789, time.FixedZone("UTC+8", 8*3600))
	shop := &entity.Shop{
		Name:      "Tea House",
		Category:  "Food",
		Floor:     "2",
		Contact:   "555-0100",
		OwnerID:   "u1",
		CreatedOn: created,
	}

	doc := fromShopDomain(shop)
	assert.Equal(t, "2024-03-01T02:30:00.123Z", doc.CreatedOn)

	got := toShopDomain("shop-1", doc)
	assert.Equal(t, "shop-1", got.ID)
	assert.Equal(t, "u1", got.OwnerID)
	assert.True(t, created.Truncate(time.Millisecond).Equal(got.CreatedOn))
}

func TestToDecimal(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "float", value: 12.5, want: "12.5"},
		{name: "integer", value: int64(7), want: "7"},
		{name: "string", value: "3.99", want: "3.99"},
		{name: "bad string", value: "abc", want: "0"},
		{name: "missing", value: nil, want: "0"},
		{name: "other numeric", value: int32(4), want: "4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, toDecimal(tc.value).String())
		})
	}
}

func TestParseDate(t *testing.T) {
	ptr := func(s string) *string { return &s }

	testCases := []struct {
		name  string
		value *string
		want  *time.Time
	}{
		{name: "nil", value: nil},
		{name: "empty", value: ptr("")},
		{name: "date", value: ptr("2024-05-01"), want: timePtr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339", value: ptr("2024-05-01T08:00:00Z"), want: timePtr(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))},
		{name: "unix millis", value: ptr("1714521600000"), want: timePtr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))},
		{name: "garbage", value: ptr("next tuesday")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseDate(tc.value)
			if tc.want == nil {
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.want.Equal(*got), "got %s", got)
		})
	}
}

func TestOfferDocument_RoundTrip(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	offer := &entity.Offer{
		ShopID:    "shop-1",
		Title:     "Spring sale",
		Discount:  decimal.RequireFromString("15"),
		StartDate: &start,
	}

	doc := fromOfferDomain(offer)
	require.NotNil(t, doc.StartDate)
	assert.Equal(t, "2024-05-01", *doc.StartDate)
	assert.Nil(t, doc.EndDate)
	assert.Equal(t, []string{}, doc.ProductIDs)
	assert.InDelta(t, 15.0, doc.Discount, 0.0001)

	got := toOfferDomain("offer-1", doc)
	assert.Equal(t, "offer-1", got.ID)
	assert.True(t, got.Discount.Equal(decimal.NewFromInt(15)))
	require.NotNil(t, got.StartDate)
	assert.True(t, start.Equal(*got.StartDate))
	assert.Nil(t, got.EndDate)
	assert.NotNil(t, got.ProductIDs)
}

func TestAuditDocument_EmptyDetails(t *testing.T) {
	doc := fromAuditDomain(&entity.AuditRecord{
		Timestamp: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		UserID:    entity.AnonymousUserID,
		Action:    entity.ActionLoginError,
	})

	assert.Equal(t, "2024-03-01T10:30:00.000Z", doc.Timestamp)
	assert.NotNil(t, doc.Details)
	assert.Empty(t, doc.Details)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
