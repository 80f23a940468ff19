package models

import "time"

// Shipping is flat below the free-shipping threshold, free above it.
const (
	FreeShippingThreshold = 500.0
	ShippingFee           = 29.0
)

// ExpectedDeliveryDays is how far out the promised delivery date is set.
const ExpectedDeliveryDays = 5

func ShippingFor(itemsPrice float64) float64 {
	if itemsPrice < FreeShippingThreshold {
		return ShippingFee
	}
	return 0
}

// RefreshDeliveryProgress derives the coarse delivery stage and delay flag
// in place and reports whether anything changed. Cancellation pins the stage
// to 0; otherwise the stage only ever advances. The creation day counts as
// day 1.
func (o *Order) RefreshDeliveryProgress(now time.Time) bool {
	changed := false

	if o.IsCanceled {
		if o.DeliveryStage != 0 {
			o.DeliveryStage = 0
			changed = true
		}
		if o.DelayMessage {
			o.DelayMessage = false
			changed = true
		}
		return changed
	}

	daysPassed := int(now.Sub(o.CreatedAt).Hours()/24) + 1

	desired := 1
	switch {
	case o.IsDelivered:
		desired = 4
	case daysPassed >= 3:
		desired = 3
	case daysPassed == 2:
		desired = 2
	}

	if o.DeliveryStage < desired {
		o.DeliveryStage = desired
		changed = true
	}

	delayed := o.ExpectedDeliveryDate != nil &&
		!o.IsDelivered &&
		now.After(*o.ExpectedDeliveryDate)
	if o.DelayMessage != delayed {
		o.DelayMessage = delayed
		changed = true
	}

	return changed
}
