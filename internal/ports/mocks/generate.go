//go:generate mockgen -source=../record_repository.go -destination=./mock_record_repository.go -package=mocks
//go:generate mockgen -source=../order_repository.go  -destination=./mock_order_repository.go  -package=mocks
//go:generate mockgen -source=../tx_manager.go        -destination=./mock_tx_manager.go        -package=mocks
//go:generate mockgen -source=../page_cache.go        -destination=./mock_page_cache.go        -package=mocks
//go:generate mockgen -source=../tracklist_fetcher.go -destination=./mock_tracklist_fetcher.go -package=mocks
//go:generate mockgen -source=../validator.go         -destination=./mock_validator.go         -package=mocks
//go:generate mockgen -source=../record_service.go    -destination=./mock_record_service.go    -package=mocks

package mocks
