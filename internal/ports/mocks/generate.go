//go:generate mockgen -source=../pricer.go           -destination=./mock_pricer.go           -package=mocks
//go:generate mockgen -source=../payment.go          -destination=./mock_payment.go          -package=mocks
//go:generate mockgen -source=../seat_reservation.go -destination=./mock_seat_reservation.go -package=mocks
//go:generate mockgen -source=../purchase_cache.go   -destination=./mock_purchase_cache.go   -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks
//go:generate mockgen -source=../ticket_service.go   -destination=./mock_ticket_service.go   -package=mocks

package mocks
