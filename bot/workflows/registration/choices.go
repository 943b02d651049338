// Package registration defines the fixed step table of the «Ochiq
// muloqot» reception dialog: region, attendance mode, full name, date
// of birth, district, phone and appeal text, in that order.
package registration

import "OchiqMuloqot/entity"

// Regions returns the fourteen administrative regions offered on the
// region keyboard. The canonical value is the Uzbek (Latin) name, which
// is also what lands in the durable log.
func Regions() []entity.Choice {
	return []entity.Choice{
		region("Qoraqalpog'iston Respublikasi", "Республика Каракалпакстан"),
		region("Andijon viloyati", "Андижанская область"),
		region("Buxoro viloyati", "Бухарская область"),
		region("Jizzax viloyati", "Джизакская область"),
		region("Qashqadaryo viloyati", "Кашкадарьинская область"),
		region("Navoiy viloyati", "Навоийская область"),
		region("Namangan viloyati", "Наманганская область"),
		region("Samarqand viloyati", "Самаркандская область"),
		region("Sirdaryo viloyati", "Сырдарьинская область"),
		region("Surxondaryo viloyati", "Сурхандарьинская область"),
		region("Toshkent viloyati", "Ташкентская область"),
		region("Toshkent shahar", "Город Ташкент"),
		region("Farg'ona viloyati", "Ферганская область"),
		region("Xorazm viloyati", "Хорезмская область"),
	}
}

func region(uz, ru string) entity.Choice {
	return entity.Choice{
		Value: uz,
		Labels: map[entity.Language]string{
			entity.LanguageUz: uz,
			entity.LanguageRu: ru,
		},
	}
}

// Modes returns the attendance forms. Values stay "offline"/"online"
// regardless of the dialog language.
func Modes() []entity.Choice {
	return []entity.Choice{
		{
			Value: "offline",
			Labels: map[entity.Language]string{
				entity.LanguageUz: "Ha, shaxsan qatnashaman (offline)",
				entity.LanguageRu: "Да, лично (офлайн)",
			},
		},
		{
			Value: "online",
			Labels: map[entity.Language]string{
				entity.LanguageUz: "Yo'q, onlayn qatnashaman (online)",
				entity.LanguageRu: "Нет, онлайн (дистанционно)",
			},
		},
	}
}

// DefaultDistricts covers Tashkent city; deployments for receptions
// elsewhere override the list through configuration.
func DefaultDistricts() []entity.Choice {
	return []entity.Choice{
		district("Bektemir", "Bektemir tumani", "Бектемирский район"),
		district("Chilonzor", "Chilonzor tumani", "Чиланзарский район"),
		district("Mirobod", "Mirobod tumani", "Мирабадский район"),
		district("Mirzo Ulug'bek", "Mirzo Ulug'bek tumani", "Мирзо-Улугбекский район"),
		district("Olmazor", "Olmazor tumani", "Алмазарский район"),
		district("Sergeli", "Sergeli tumani", "Сергелийский район"),
		district("Shayxontohur", "Shayxontohur tumani", "Шайхантахурский район"),
		district("Uchtepa", "Uchtepa tumani", "Учтепинский район"),
		district("Yakkasaroy", "Yakkasaroy tumani", "Яккасарайский район"),
		district("Yangihayot", "Yangihayot tumani", "Янгихаётский район"),
		district("Yashnobod", "Yashnobod tumani", "Яшнабадский район"),
		district("Yunusobod", "Yunusobod tumani", "Юнусабадский район"),
	}
}

func district(value, uz, ru string) entity.Choice {
	return entity.Choice{
		Value: value,
		Labels: map[entity.Language]string{
			entity.LanguageUz: uz,
			entity.LanguageRu: ru,
		},
	}
}
