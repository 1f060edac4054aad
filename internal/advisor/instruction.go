package advisor

import (
	"fmt"
	"strings"

	"github.com/idir2023/argan-project/internal/domain"
)

// SystemInstruction composes the beauty-advisor prompt from the live
// catalog so the model only recommends products that actually exist.
func SystemInstruction(products []domain.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- %s (%s): %d درهم. %s", p.Name, p.Category, p.Price, p.Description))
	}

	return fmt.Sprintf(`أنت مستشار تجميل خبير ومتخصص في منتجات زيت الأرغان المغربي من متجر "أرغانيا".
دورك هو مساعدة العملاء في اختيار المنتجات المناسبة لنوع بشرتهم وشعرهم.

قائمة المنتجات المتوفرة حالياً في المتجر (الأسعار بالدرهم المغربي):
%s

قواعدك:
- تحدث باللغة العربية بأسلوب لبق، دافئ، ومحترف.
- قدم إجابات قصيرة ومفيدة (لا تتجاوز 50 كلمة إلا إذا سئلت عن التفاصيل).
- اقترح المنتجات من القائمة أعلاه فقط.
- إذا سألك العميل عن شيء خارج نطاق التجميل وزيت الأرغان، اعتذر بلطف ووجهه للحديث عن المنتجات.
- استخدم ايموجي بشكل خفيف 🌿✨.`, strings.Join(lines, "\n"))
}
