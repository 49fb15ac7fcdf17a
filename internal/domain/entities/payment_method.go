package entities

// PaymentMethodAll is the sentinel meaning "no restriction": the session
// request omits payment_types instead of listing every method.
const PaymentMethodAll = "all"

// PaymentMethod is one selectable payment method for the checkout form.
type PaymentMethod struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PaymentMethods lists the methods this storefront offers, in display order.
var PaymentMethods = []PaymentMethod{
	{Value: PaymentMethodAll, Label: "すべての決済方法を利用可能にする"},
	{Value: "konbini", Label: "コンビニ決済"},
	{Value: "credit_card", Label: "クレジットカード"},
	{Value: "pay_easy", Label: "Pay-easy（ペイジー）"},
	{Value: "bank_transfer", Label: "銀行振込"},
	{Value: "paypay", Label: "PayPay"},
	{Value: "merpay", Label: "メルペイ"},
	{Value: "rakutenpay", Label: "楽天ペイ"},
}

// IsSupportedPaymentMethod reports whether value names a concrete method
// (the "all" sentinel is not a concrete method).
func IsSupportedPaymentMethod(value string) bool {
	for _, m := range PaymentMethods {
		if m.Value == value {
			return m.Value != PaymentMethodAll
		}
	}
	return false
}
