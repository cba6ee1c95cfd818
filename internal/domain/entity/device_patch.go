package entity

import "time"

// DevicePatch is a merge patch for a device: only set fields are written,
// absent fields keep their prior values. The patch deliberately excludes ID,
// UserID and timestamps.
type DevicePatch struct {
	Model     Field[string] `json:"model"`
	Storage   Field[string] `json:"storage"`
	Color     Field[string] `json:"color"`
	Condition Field[string] `json:"condition"`

	Status Field[DeviceStatus] `json:"status"`
	IMEI   Field[*string]      `json:"imei"`

	PurchaseDate    Field[time.Time]  `json:"purchase_date"`
	PurchasePrice   Field[float64]    `json:"purchase_price"`
	ShippingBuy     Field[float64]    `json:"shipping_buy"`
	ShippingBuyDate Field[*time.Time] `json:"shipping_buy_date"`

	RepairCost Field[float64]    `json:"repair_cost"`
	RepairDate Field[*time.Time] `json:"repair_date"`

	SalePrice           Field[*float64]   `json:"sale_price"`
	SalesFees           Field[float64]    `json:"sales_fees"`
	SaleDate            Field[*time.Time] `json:"sale_date"`
	ShippingSell        Field[float64]    `json:"shipping_sell"`
	ShippingSellDate    Field[*time.Time] `json:"shipping_sell_date"`
	BuyerName           Field[*string]    `json:"buyer_name"`
	PlatformOrderNumber Field[*string]    `json:"platform_order_number"`
	SaleInvoiceNumber   Field[*string]    `json:"sale_invoice_number"`

	IsDiffTax Field[bool]    `json:"is_diff_tax"`
	Defects   Field[*string] `json:"defects"`
}
