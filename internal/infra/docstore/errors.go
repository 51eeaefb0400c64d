package docstore

import "errors"

var (
	// ErrNotFound возвращается, когда документ отсутствует в коллекции
	// Это ответ основного источника, а не сбой, fallback в кеш не выполняется
	ErrNotFound = errors.New("docstore: document not found")

	// ErrRead возвращается, когда чтение не удалось и из основного источника, и из кеша
	ErrRead = errors.New("docstore: read failed on both live and cache sources")

	// ErrWrite возвращается при сбое записи в основной источник
	// Записи идут только в основной источник, кеш лишь инвалидируется
	ErrWrite = errors.New("docstore: write failed")

	// ErrDecode возвращается при ошибке декодирования документа
	ErrDecode = errors.New("docstore: failed to decode document")
)
