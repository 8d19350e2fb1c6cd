package grantservice

// VerifyRequest запрос на проверку гранта доступа к бронированию
type VerifyRequest struct {
	Token        string `json:"token"`
	UserID       int64  `json:"userId"`
	TicketNumber string `json:"ticketNumber"`
}

// VerifyResponse ответ сервиса грантов
// Сервис различает истёкшую ссылку и тикет с уже существующим бронированием -
// эти причины никогда не схлопываются в одну
type VerifyResponse struct {
	Success       bool   `json:"success"`
	ExpiresAt     string `json:"expiresAt,omitempty"` // ISO-8601
	TicketNumber  string `json:"ticketNumber,omitempty"`
	Expired       bool   `json:"expired,omitempty"`
	AlreadyBooked bool   `json:"alreadyBooked,omitempty"`
	Message       string `json:"message,omitempty"`
}
