package commission

import "errors"

var (
	// ErrConversionNotFound コンバージョンレコードが見つからないエラー
	ErrConversionNotFound = errors.New("conversion record not found")
	// ErrInvalidConversionType 無効なコンバージョン種別エラー
	ErrInvalidConversionType = errors.New("invalid conversion type")
)
