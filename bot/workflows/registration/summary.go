package registration

import (
	"fmt"
	"strings"

	"OchiqMuloqot/entity"
)

// Summary renders the bilingual recap of one registration, used both as
// the applicant's receipt and in the admin notification.
func Summary(rec *entity.Registration) string {
	langName := "O'zbekcha"
	if rec.Language == entity.LanguageRu {
		langName = "Русский"
	}

	modeName := "Online"
	if rec.Mode == "offline" {
		modeName = "Offline"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n— Til/Язык: %s", langName)
	fmt.Fprintf(&b, "\n— Hudud/Регион: %s", rec.Region)
	fmt.Fprintf(&b, "\n— Shakl/Формат: %s", modeName)
	fmt.Fprintf(&b, "\n— F.I.Sh/Ф.И.О.: %s", rec.FullName)
	fmt.Fprintf(&b, "\n— Tug'ilgan sana/Дата рождения: %s", rec.DateOfBirth)
	fmt.Fprintf(&b, "\n— Tuman/Rayon: %s", rec.District)
	fmt.Fprintf(&b, "\n— Telefon/Телефон: %s", rec.Phone)
	fmt.Fprintf(&b, "\n— Murojaat/Обращение: %s\n", rec.AppealText)
	return b.String()
}
