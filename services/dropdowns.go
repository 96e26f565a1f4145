package services

// CurrencyOptions lists the currencies a line can be entered or displayed in.
var CurrencyOptions = []Currency{CurrencyTRY, CurrencyUSD, CurrencyEUR}

// KDVOptions lists the selectable KDV percentage values.
var KDVOptions = []int{0, 1, 10, 18, 20}

// ProfitOptions lists commonly used profit margin percentages for quick entry.
var ProfitOptions = []int{0, 5, 10, 15, 20, 25, 30, 40, 50}

// DeviceStatusOptions lists the repair workflow states in order.
var DeviceStatusOptions = []string{
	"received",
	"diagnosing",
	"repairing",
	"ready",
	"delivered",
	"cancelled",
}

// DeviceStatusLabels maps workflow states to their display names.
var DeviceStatusLabels = map[string]string{
	"received":   "Teslim Alındı",
	"diagnosing": "Arıza Tespiti",
	"repairing":  "Onarımda",
	"ready":      "Hazır",
	"delivered":  "Teslim Edildi",
	"cancelled":  "İptal",
}

// ServiceCallStatusOptions lists the service call states.
var ServiceCallStatusOptions = []string{"open", "completed"}

// ServiceCallStatusLabels maps service call states to their display names.
var ServiceCallStatusLabels = map[string]string{
	"open":      "Açık",
	"completed": "Tamamlandı",
}
