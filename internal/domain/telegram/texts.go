package telegram

// ReminderMarker is the part of the reminder nag matched on replies.
const ReminderMarker = "Жду Текстовый Дейлик"

const (
	TextGroupOnly   = "Эта команда работает только в групповых чатах."
	TextPrivateOnly = "Эта команда работает только в личке."

	TextStartNotAdmin = "Только админ чата может запускать бота."
	TextStarted       = "Бот активирован! Добавлено админов: %d.\nУстановите время рассылки: /settime 10:00"

	TextSetTimeNotAdmin = "Только админ может менять время рассылки."
	TextSetTimeUsage    = "Укажи время в формате HH:MM, например: /settime 10:00"
	TextSetTimeInvalid  = "Некорректный формат. Используй: /settime 10:00"
	TextSetTimeNoChat   = "Чат ещё не активирован. Сначала выполните /start."
	TextTimeSet         = "Время ежедневной рассылки установлено на %s."

	TextTestDailyNotAdmin = "Только админ чата может отправлять дэйлик."

	TextExcludeNotAdmin = "Только админ может исключать участников."
	TextExcludeUsage    = "Укажи username или user_id (например: /exclude @username или /exclude 123456789)."
	TextUserNotFound    = "Пользователь не найден в базе."
	TextExcluded        = "Пользователь с user_id %d больше не будет получать напоминания о дэйлике."

	TextIncludeNotAdmin = "Только админ может возвращать участников."
	TextIncludeUsage    = "Укажи username или user_id (например: /include @username или /include 123456789)."
	TextIncluded        = "Пользователь с user_id %d теперь снова в списке активных."
	TextIncludedNew     = "Пользователь %s добавлен в список активных и теперь должен сдавать отчёты."
	TextMemberNotFound  = "Не удалось найти пользователя в чате.\n" +
		"Проверь корректность user_id или username и убедись, что пользователь писал в чат.\n" +
		"Лайфхак: пусть участник просто ответит реплаем на дэйлик, чтобы бот 100% его увидел."

	TextListNotAdmin   = "Только админ может просматривать список."
	TextActiveEmpty    = "Список активных участников пуст."
	TextActiveTitle    = "Активные участники:\n"
	TextAllEmpty       = "Участников пока нет в базе."
	TextAllTitle       = "Все участники:\n"
	TextSentToDM       = "Результат отправил вам в личку!"
	TextDMUnavailable  = "Не удалось отправить сообщение в личку. Напишите боту в ЛС (например, /help), чтобы получать личные сообщения."
	TextMyChatsEmpty   = "Не найдено чатов, где вы были замечены как админ или активный участник."
	TextMyChatsTitle   = "Ваши чаты:\n"
	TextMyChatsFooter  = "\nДля отчёта за сегодня: /report <chat_id>\nДля другой даты: /report <chat_id> YYYY-MM-DD"
	TextUntitledChat   = "Без названия"
	TextReportUsage    = "Используй: /report <chat_id> [дата в формате YYYY-MM-DD]"
	TextReportNotAdmin = "Команда /report доступна только администраторам указанного чата."
	TextReportBadDate  = "Дата в формате YYYY-MM-DD, например: 2024-06-12"
	TextReportEmpty    = "Нет отчётов за эту дату."
	TextReportTitle    = "Отчёты за %s:\n\n"

	TextInternalError = "Что-то пошло не так, попробуйте позже."
)
