package dto

// TableRequest is the validated body of POST /tables and PUT /tables/:table_id.
type TableRequest struct {
	TableName string
	Capacity  int
}

// SeatRequest is the validated body of PUT /tables/:table_id/seat.
type SeatRequest struct {
	ReservationID uint
}
