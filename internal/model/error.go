// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrConflict       = errors.New("resource conflict") // 試行回数超過など

	// ゲームドメイン固有のエラー
	ErrLengthMismatch      = errors.New("guess length does not match target length")
	ErrUnknownPuzzleType   = errors.New("unknown puzzle type")
	ErrHintQuotaExceeded   = errors.New("hint quota exceeded")
	ErrSessionCompleted    = errors.New("session already completed")
	ErrNoWordForLength     = errors.New("no active word for requested length")
	ErrWordNotInDictionary = errors.New("word not in dictionary")
)

// ErrorDetail はクライアントに返すエラーの詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`  // バリデーションエラーの対象フィールド
	Status  string `json:"status,omitempty"` // 拒否後のセッションステータス (409の敗北確定など)
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージと根本原因をまとめたカスタムエラー型です。
// webutil.HandleError がこの型を解釈してHTTPレスポンスに変換します。
type AppError struct {
	Detail ErrorDetail
	err    error // ステータスコード判定用のセンチネルエラー
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		err: err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Message + ": " + e.err.Error()
	}
	return e.Detail.Message
}

// Unwrap は errors.Is での判定のためにラップされたエラーを返します
func (e *AppError) Unwrap() error {
	return e.err
}
