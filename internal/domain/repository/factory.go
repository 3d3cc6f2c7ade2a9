package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Items() ItemRepository
	Orders() OrderRepository
	Analytics() AnalyticsRepository
}
