package facades

import (
	"context"

	"github.com/shopspring/decimal"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/sfomin/gw-currency-rates/internal/logger"
)

// MarketRateGRPCFacade fetches current market rates from an external
// exchange service over gRPC. It is optional: the gateway only uses it
// to suggest a rate while an admin is adding a currency.
type MarketRateGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewMarketRateGRPCFacade creates a new facade with a gRPC client.
func NewMarketRateGRPCFacade(client pb.ExchangeServiceClient) *MarketRateGRPCFacade {
	return &MarketRateGRPCFacade{client: client}
}

// GetRateToRUB fetches the market rate of code against RUB.
func (f *MarketRateGRPCFacade) GetRateToRUB(ctx context.Context, code string) (decimal.Decimal, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: code,
		ToCurrency:   "RUB",
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch market rate via gRPC",
			"code", code, "error", err)
		return decimal.Zero, err
	}

	return decimal.NewFromFloat32(resp.Rate), nil
}
