package service

import (
	"github.com/shopspring/decimal"
)

// PriceLine 计价行（单价 × 数量）
type PriceLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Quote 计价结果
type Quote struct {
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// LineTotal 行合计 = 单价 × 数量
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Calculate 小计 = Σ 单价 × 数量，合计 = 小计 + 运费 - 优惠
// 不校验负数输入，由调用方保证。
func Calculate(lines []PriceLine, shippingFee, discount decimal.Decimal) Quote {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return Quote{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Discount:    discount,
		Total:       subtotal.Add(shippingFee).Sub(discount),
	}
}

// PricingCalculator 持有固定运费的计价器
type PricingCalculator struct {
	shippingFee decimal.Decimal
}

// NewPricingCalculator 创建计价器
func NewPricingCalculator(shippingFee decimal.Decimal) *PricingCalculator {
	return &PricingCalculator{shippingFee: shippingFee}
}

// ShippingFee 当前运费
func (p *PricingCalculator) ShippingFee() decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return p.shippingFee
}

// Quote 按固定运费计价，优惠恒为 0
func (p *PricingCalculator) Quote(lines []PriceLine) Quote {
	return Calculate(lines, p.ShippingFee(), decimal.Zero)
}
