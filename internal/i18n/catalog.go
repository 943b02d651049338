package i18n

import "OchiqMuloqot/entity"

const (
	welcomeUz = "Assalomu alaykum!\n\n" +
		"Markaziy bank xodimlari bilan o'tkaziladigan «Ochiq muloqot» platformasiga xush kelibsiz!\n" +
		"Sizning fikr va takliflaringiz — moliyaviy xizmatlarni yanada qulay va samarali qilishda muhim.\n" +
		"Iltimos, quyidagi qadamlarni bosqichma-bosqich bajaring."

	welcomeRu = "Ассалому алайкум!\n" +
		"Добро пожаловать на платформу «Открытый диалог» с Председателем Центробанка Тимуром Аминжоновичем Ишметовым!\n" +
		"Ваши мнения и предложения важны для того, чтобы сделать финансовые услуги ещё удобнее и эффективнее.\n" +
		"Пожалуйста, выполните шаги ниже по порядку."
)

var catalog = map[entity.Language]map[string]string{
	entity.LanguageUz: {
		KeyChooseLanguage: "Iltimos, tilni tanlang / Пожалуйста, выберите язык:",

		KeyPromptRegion:      "Iltimos, yashash hududingizni tanlang:",
		KeyPromptMode:        "Qabul shaklini tanlang:",
		KeyPromptFullName:    "To'liq ism-sharifingizni kiriting:",
		KeyPromptDateOfBirth: "Tug'ilgan sanangiz (dd.mm.yyyy, masalan 07.09.1999):",
		KeyPromptDistrict:    "Yashash tumani/shahri:",
		KeyPromptPhone:       "Telefon raqamingizni yuboring (tugma orqali):",
		KeyPromptAppealText:  "Murojaat mazmuni (qisqacha va aniq):",

		KeyErrChoice:      "Iltimos, quyidagi tugmalardan birini tanlang.",
		KeyErrFullName:    "Ism-sharif 2 tadan 200 tagacha belgidan iborat bo'lishi kerak.",
		KeyErrDateOfBirth: "Noto'g'ri sana formati. dd.mm.yyyy yuboring.",
		KeyErrPhone:       "Iltimos, tugma orqali yuboring yoki +998… formatida yozing.",
		KeyErrAppealText:  "Murojaat matni bo'sh bo'lmasligi va 500 belgidan oshmasligi kerak.",

		KeyBtnSendPhone: "Telefon raqamimni yuborish",

		KeyThanks:        "Hurmatli fuqaro, murojaatingiz qabul qilindi. Tez orada bog'lanamiz.",
		KeyCancelled:     "Bekor qilindi.",
		KeyPersistFailed: "Texnik nosozlik yuz berdi, murojaatingiz hali saqlanmadi. Iltimos, birozdan so'ng istalgan xabar yuborib qayta urinib ko'ring.",

		KeyAdminNewRegistration: "✅ Yangi ro'yxatdan o'tish:",
	},
	entity.LanguageRu: {
		KeyChooseLanguage: "Iltimos, tilni tanlang / Пожалуйста, выберите язык:",

		KeyPromptRegion:      "Пожалуйста, выберите ваш регион проживания:",
		KeyPromptMode:        "Выберите форму участия:",
		KeyPromptFullName:    "Введите ваше полное имя:",
		KeyPromptDateOfBirth: "Дата рождения (дд.мм.гггг, например 07.09.1999):",
		KeyPromptDistrict:    "Район/город проживания:",
		KeyPromptPhone:       "Отправьте ваш номер телефона (через кнопку):",
		KeyPromptAppealText:  "Содержание обращения (кратко и конкретно):",

		KeyErrChoice:      "Пожалуйста, выберите один из вариантов ниже.",
		KeyErrFullName:    "Ф.И.О. должно содержать от 2 до 200 символов.",
		KeyErrDateOfBirth: "Неверный формат даты. Используйте дд.мм.гггг.",
		KeyErrPhone:       "Пожалуйста, отправьте через кнопку или в формате +998…",
		KeyErrAppealText:  "Текст обращения не должен быть пустым или длиннее 500 символов.",

		KeyBtnSendPhone: "Отправить мой номер",

		KeyThanks:        "Спасибо! Обращение принято. Мы свяжемся с вами в ближайшее время.",
		KeyCancelled:     "Отменено.",
		KeyPersistFailed: "Произошла техническая ошибка, обращение пока не сохранено. Пожалуйста, повторите попытку чуть позже, отправив любое сообщение.",

		KeyAdminNewRegistration: "✅ Новая регистрация:",
	},
}
