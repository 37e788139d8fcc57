package tbo

// Wire types for the TBO hotel-inventory API. These mirror the provider's
// payloads; the normalizer converts them into domain entities so nothing
// outside this package depends on the provider's shapes.

// statusCode values returned in responses.
const (
	statusSuccess        = 200
	statusNoAvailability = 201
	statusRateChanged    = 202
)

// apiStatus is the status block every TBO response carries.
type apiStatus struct {
	Code        int    `json:"Code"`
	Description string `json:"Description"`
}

// paxRoom describes one requested room's guest composition.
type paxRoom struct {
	Adults   int `json:"Adults"`
	Children int `json:"Children"`
}

// searchRequest is the POST /Search payload.
type searchRequest struct {
	CheckIn            string    `json:"CheckIn"`
	CheckOut           string    `json:"CheckOut"`
	HotelCodes         string    `json:"HotelCodes"`
	GuestNationality   string    `json:"GuestNationality"`
	PaxRooms           []paxRoom `json:"PaxRooms"`
	ResponseTime       float64   `json:"ResponseTime"`
	IsDetailedResponse bool      `json:"IsDetailedResponse"`
}

// searchResponse is the POST /Search reply.
type searchResponse struct {
	Status      apiStatus     `json:"Status"`
	HotelResult []hotelResult `json:"HotelResult"`
}

// hotelResult is one hotel's availability block.
type hotelResult struct {
	HotelCode string       `json:"HotelCode"`
	Currency  string       `json:"Currency"`
	Rooms     []roomResult `json:"Rooms"`
}

// roomResult is one bookable room option.
type roomResult struct {
	Name           []string       `json:"Name"`
	BookingCode    string         `json:"BookingCode"`
	TotalFare      float64        `json:"TotalFare"`
	TotalTax       float64        `json:"TotalTax"`
	MealType       string         `json:"MealType"`
	IsRefundable   bool           `json:"IsRefundable"`
	DayRates       [][]dayRate    `json:"DayRates"`
	CancelPolicies []cancelPolicy `json:"CancelPolicies"`
	RoomTypeCode   string         `json:"RoomTypeCode"`
}

// dayRate is the nightly base price within a room's day-rate matrix.
type dayRate struct {
	BasePrice float64 `json:"BasePrice"`
}

// cancelPolicy is one cancellation charge window.
type cancelPolicy struct {
	FromDate           string  `json:"FromDate"`
	ChargeType         string  `json:"ChargeType"`
	CancellationCharge float64 `json:"CancellationCharge"`
}

// preBookRequest is the POST /PreBook payload.
type preBookRequest struct {
	BookingCode string `json:"BookingCode"`
	PaymentMode string `json:"PaymentMode"`
}

// preBookResponse is the POST /PreBook reply. A 202 status signals the rate
// was repriced since the original search.
type preBookResponse struct {
	Status      apiStatus     `json:"Status"`
	HotelResult []hotelResult `json:"HotelResult"`
}

// customerName is one guest on a booking.
type customerName struct {
	Title     string `json:"Title"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Type      string `json:"Type"`
}

// bookRequest is the POST /Book payload.
type bookRequest struct {
	BookingCode       string           `json:"BookingCode"`
	ClientReferenceID string           `json:"ClientReferenceId"`
	CustomerDetails   []customerDetail `json:"CustomerDetails"`
	BookingType       string           `json:"BookingType"`
	PaymentMode       string           `json:"PaymentMode"`
}

// customerDetail groups the guests of one room.
type customerDetail struct {
	RoomIndex     int            `json:"RoomIndex"`
	CustomerNames []customerName `json:"CustomerNames"`
}

// bookResponse is the POST /Book reply.
type bookResponse struct {
	Status             apiStatus `json:"Status"`
	ConfirmationNumber string    `json:"ConfirmationNumber"`
	ClientReferenceID  string    `json:"ClientReferenceId"`
}
