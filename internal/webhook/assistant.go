package webhook

import (
	"context"
	"hash/fnv"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Source string

const (
	SourceWebhook  Source = "webhook"
	SourceFallback Source = "fallback"
	SourceMock     Source = "mock"
)

const (
	Greeting       = "Halo! Saya adalah AI Assistant untuk membantu Anda dengan analisis keuangan dan rekomendasi finansial. Bagaimana saya bisa membantu Anda hari ini?"
	NoReply        = "Maaf, tidak ada respons dari AI."
	ConnectionLost = "Maaf, terjadi kesalahan dalam koneksi. Silakan periksa pengaturan webhook atau coba lagi nanti."
)

// MockReplies are answered when no webhook is configured.
var MockReplies = []string{
	"Berdasarkan data keuangan Anda, saya merekomendasikan untuk meningkatkan dana darurat sebesar 20% dari penghasilan bulanan.",
	"Analisis pengeluaran Anda menunjukkan bahwa kategori makanan melebihi 30% dari total pengeluaran. Pertimbangkan untuk mengurangi makan di luar.",
	"Portofolio investasi Anda terlihat seimbang. Namun, pertimbangkan untuk menambahkan diversifikasi pada sektor teknologi.",
	"Saya melihat ada peluang untuk mengoptimalkan pembayaran hutang dengan strategi debt avalanche method.",
	"Berdasarkan tren pengeluaran 6 bulan terakhir, budget bulanan Anda bisa dioptimalkan dengan mengurangi 15% pada kategori hiburan.",
}

type RecommendationType string

const (
	RecommendationTransaction   RecommendationType = "transaction"
	RecommendationBudget        RecommendationType = "budget"
	RecommendationEmergencyFund RecommendationType = "emergency_fund"
)

type Recommendation struct {
	ID          string             `json:"id" example:"1"`
	Type        RecommendationType `json:"type" example:"emergency_fund" enums:"transaction,budget,emergency_fund"`
	Title       string             `json:"title" example:"Dana Darurat"`
	Description string             `json:"description" example:"Sebaiknya alokasikan Rp 500.000 ke dana darurat bulan ini."`
	Amount      *decimal.Decimal   `json:"amount,omitempty" example:"500000"`
	Category    string             `json:"category,omitempty" example:"Investment"`
	Actionable  bool               `json:"actionable" example:"true"`
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// MockRecommendations are returned when the webhook does not provide any.
var MockRecommendations = []Recommendation{
	{
		ID:          "1",
		Type:        RecommendationEmergencyFund,
		Title:       "Dana Darurat",
		Description: "Sebaiknya alokasikan Rp 500.000 ke dana darurat bulan ini untuk mencapai target 6 bulan pengeluaran.",
		Amount:      amount(500000),
		Actionable:  true,
	},
	{
		ID:          "2",
		Type:        RecommendationBudget,
		Title:       "Budget Makanan",
		Description: "Pengeluaran makanan bulan lalu melebihi budget. Pertimbangkan untuk mengurangi makan di luar.",
		Actionable:  false,
	},
	{
		ID:          "3",
		Type:        RecommendationTransaction,
		Title:       "Investasi Bulanan",
		Description: "Saatnya melakukan investasi rutin bulanan sebesar Rp 1.000.000 ke reksa dana.",
		Amount:      amount(1000000),
		Category:    "Investment",
		Actionable:  true,
	},
}

type chatRequest struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Context   string `json:"context"`
}

type chatResponse struct {
	Response string `json:"response"`
	Message  string `json:"message"`
}

// ChatReply is the answer to a chat message.
type ChatReply struct {
	Reply  string
	Source Source
	Err    error // Why the fallback reply was used
}

// Chat forwards a message to the webhook.
//
// Without a webhook, a canned reply is chosen by the message. When the
// webhook fails, the reply is the connection error text. Chat never
// returns an error to the caller.
func (c *Client) Chat(ctx context.Context, message string, now time.Time) ChatReply {
	if c.URL() == "" {
		return ChatReply{Reply: mockReply(message), Source: SourceMock}
	}

	var response chatResponse
	_, err := c.post(ctx, "chat", chatRequest{
		Message:   message,
		Timestamp: now.UTC().Format(timestampFormat),
		Context:   "finance_chat",
	}, &response)
	if err != nil {
		log.Warn().Err(err).Msg("Webhook chat")
		return ChatReply{Reply: ConnectionLost, Source: SourceFallback, Err: err}
	}

	reply := response.Response
	if reply == "" {
		reply = response.Message
	}
	if reply == "" {
		reply = NoReply
	}

	return ChatReply{Reply: reply, Source: SourceWebhook}
}

func mockReply(message string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(message))
	return MockReplies[h.Sum32()%uint32(len(MockReplies))]
}

type recommendationsRequest struct {
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

type recommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendations fetches recommendations from the webhook.
//
// A list in the response is used as is, even when it is empty. In all
// other cases, the mock recommendations are returned.
func (c *Client) Recommendations(ctx context.Context, now time.Time) ([]Recommendation, Source) {
	if c.URL() == "" {
		return MockRecommendations, SourceMock
	}

	var response recommendationsResponse
	_, err := c.post(ctx, "recommendations", recommendationsRequest{
		Action:    "get_recommendations",
		Timestamp: now.UTC().Format(timestampFormat),
	}, &response)
	if err != nil {
		log.Warn().Err(err).Msg("Webhook recommendations")
		return MockRecommendations, SourceFallback
	}

	if response.Recommendations == nil {
		return MockRecommendations, SourceMock
	}

	return response.Recommendations, SourceWebhook
}

type testRequest struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Context   string `json:"context"`
}

// TestResult is the outcome of a connection test.
type TestResult struct {
	OK     bool   `json:"ok" example:"false"`
	Status int    `json:"status" example:"404"` // HTTP status of the webhook response, 0 if there was none
	Error  string `json:"error,omitempty" example:"status 404: the webhook responded with an unexpected status"`
}

// Test checks that the webhook accepts requests.
func (c *Client) Test(ctx context.Context, now time.Time) TestResult {
	status, err := c.post(ctx, "test", testRequest{
		Message:   "Test connection",
		Timestamp: now.UTC().Format(timestampFormat),
		Context:   "webhook_test",
	}, nil)
	if err != nil {
		return TestResult{Status: status, Error: err.Error()}
	}

	return TestResult{OK: status >= http.StatusOK && status < http.StatusMultipleChoices, Status: status}
}
