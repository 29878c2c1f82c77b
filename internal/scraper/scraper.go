// Package scraper pulls dorm building data from the student-living
// website. Everything here is best-effort parsing of a third-party page;
// failures surface as upstream errors, never as partial records.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dormlife/internal/apperr"
	"dormlife/internal/models"

	"github.com/PuerkitoBio/goquery"
)

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,100}$`)

// ValidKey reports whether key is safe to append to the building URL.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// Building holds everything scraped from one building page.
type Building struct {
	Name     string
	Year     string
	Styles   string
	PerSuite int

	FloorCount     int
	Occupancy      int
	StaffOccupancy int

	HasThemeCommunity  bool
	IsCoEd             bool
	HasGenderInclusive bool
	GenderBreakdown    string

	HasFloorRestrooms        bool
	HasRoomRestrooms         bool
	HasCleaning              bool
	CleaningFrequency        string
	HasGenderNeutralRestroom bool

	RoomTypes []models.RoomType
	Furniture []models.DormFeature
	Amenities []models.DormFeature

	ClosestDiningHall string
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given building page base URL, e.g.
// "https://sll.rpi.edu/buildings/".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 20 * time.Second},
	}
}

// FetchBuilding downloads and parses the page for one building key.
func (c *Client) FetchBuilding(ctx context.Context, key string) (*Building, error) {
	if !ValidKey(key) {
		return nil, apperr.NewValidationError("key", "malformed building key")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+key, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch building page: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: building page returned %s", apperr.ErrUpstream, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse building page: %v", apperr.ErrUpstream, err)
	}

	return parseBuilding(doc), nil
}

func parseBuilding(doc *goquery.Document) *Building {
	b := &Building{}

	b.Name = strings.TrimSpace(strings.Split(doc.Find("#block-paperclip-page-title").Text(), ":")[0])
	b.Year = strings.SplitN(doc.Find("h2.class-year").Text(), " ", 2)[0]

	b.Styles = cellText(doc, ".community-info", "Building Type")
	b.PerSuite = cellInt(doc, ".community-info", "Students per suite/apartment")
	b.Occupancy = cellInt(doc, ".community-info", "# of Occupants")
	b.StaffOccupancy = cellInt(doc, ".community-info", "# of Student Staff per building")
	b.FloorCount = cellInt(doc, ".community-info", "# of Floors")
	b.HasThemeCommunity = cellYes(doc, ".community-info", "Theme Community Available")
	b.IsCoEd = cellYes(doc, ".community-info", "Co-Ed Building")
	b.HasGenderInclusive = cellYes(doc, ".community-info", "Gender Inclusive Housing Available")
	b.GenderBreakdown = cellText(doc, ".community-info", "Gender Breakdown")

	b.HasFloorRestrooms = cellYes(doc, ".restrooms", "On Floor")
	b.HasRoomRestrooms = cellYes(doc, ".restrooms", "In Room")
	b.HasCleaning = cellYes(doc, ".restrooms", "Cleaning Available")
	b.CleaningFrequency = cellText(doc, ".restrooms", "Cleaning Schedule")
	b.HasGenderNeutralRestroom = cellYes(doc, ".restrooms", "All-Gender Restroom Available")

	b.Furniture = parseFeatures(doc, ".furniture tr")
	b.Amenities = parseFeatures(doc, ".amenities tr")
	b.RoomTypes = parseRoomTypes(doc)

	b.ClosestDiningHall = cellText(doc, ".dining", "Nearest Dining Hall")

	return b
}

// cellText finds the label cell inside a section table and returns the
// text of the cell next to it.
func cellText(doc *goquery.Document, section, label string) string {
	sel := fmt.Sprintf("%s td:contains(%q)", section, label)
	return strings.TrimSpace(doc.Find(sel).First().Next().Text())
}

func cellInt(doc *goquery.Document, section, label string) int {
	n, _ := strconv.Atoi(cellText(doc, section, label))
	return n
}

// cellYes reads the yes/no icon next to a label cell. The page encodes
// the answer in the icon's aria-label.
func cellYes(doc *goquery.Document, section, label string) bool {
	sel := fmt.Sprintf("%s td:contains(%q)", section, label)
	return doc.Find(sel).First().Next().Find("i").AttrOr("aria-label", "") == "Yes"
}

func parseFeatures(doc *goquery.Document, rowSel string) []models.DormFeature {
	var features []models.DormFeature
	doc.Find(rowSel).Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find("td").First().Text())
		if name == "" {
			return
		}
		valueCell := row.Find("td").First().Next()
		icon := valueCell.Find("i")
		exists := true // rows without an icon are assumed present
		if icon.Length() > 0 {
			exists = icon.AttrOr("aria-label", "") == "Yes"
		}
		features = append(features, models.DormFeature{
			Name:        name,
			Exists:      exists,
			Description: strings.TrimSpace(valueCell.Text()),
		})
	})
	return features
}

func parseRoomTypes(doc *goquery.Document) []models.RoomType {
	var rooms []models.RoomType
	doc.Find(".room-types .table tr").Each(func(_ int, row *goquery.Selection) {
		// Rows without a price are unavailable room types.
		if !strings.Contains(row.Text(), "$") {
			return
		}
		firstCol := strings.Split(strings.TrimSpace(row.Find("td").First().Text()), "\n")
		name := strings.TrimSpace(firstCol[0])
		area := 0
		if len(firstCol) > 1 {
			area = digits(firstCol[1])
		}
		price := digits(strings.SplitN(strings.TrimSpace(row.Find("td").Last().Text()), "\n", 2)[0])
		rooms = append(rooms, models.RoomType{
			Name:  name,
			Area:  float64(area),
			Price: float64(price),
		})
	})
	return rooms
}

var nonDigits = regexp.MustCompile(`[^\d]`)

func digits(s string) int {
	n, _ := strconv.Atoi(nonDigits.ReplaceAllString(s, ""))
	return n
}
