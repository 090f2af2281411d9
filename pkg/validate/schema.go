package validate

// Source column names, exactly as they appear in the input file's header.
const (
	ColPrimaryReference = "Primary Reference"
	ColStatus           = "Status"
	ColWeight           = "Weight"
	ColCreateBy         = "Create By"
	ColCreateDate       = "Create Date"
	ColOriginState      = "Origin State"
	ColDestState        = "Dest State"
	ColOriginName       = "Origin Name"
	ColDestName         = "Dest Name"
	ColOriginCity       = "Origin City"
	ColDestCity         = "Dest City"
	ColTargetShip       = "Target Ship (Range)"
	ColTargetDelivery   = "Target Delivery (Range)"
)

// Derived column names added by cleaners.
const (
	ColWeightRaw     = "Weight (Raw)"
	ColShipStart     = "Ship Start"
	ColShipEnd       = "Ship End"
	ColDeliveryStart = "Delivery Start"
	ColDeliveryEnd   = "Delivery End"
)

// RequiredColumns lists the source columns the pipeline expects. A file
// missing any of these fails structurally at load time.
func RequiredColumns() []string {
	return []string{
		ColPrimaryReference,
		ColStatus,
		ColWeight,
		ColCreateBy,
		ColCreateDate,
		ColOriginState,
		ColDestState,
		ColOriginName,
		ColDestName,
		ColOriginCity,
		ColDestCity,
		ColTargetShip,
		ColTargetDelivery,
	}
}
