package catalog

import "github.com/idir2023/argan-project/internal/domain"

// PlaceholderImage is used when a saved product carries no image.
const PlaceholderImage = "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?auto=format&fit=crop&q=80&w=800"

// DefaultCategory labels products saved without a category.
const DefaultCategory = "عام"

// DefaultCatalog returns the seed products written on first run.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "زيت أرغان نقي 100%",
			Description: "زيت عضوي معصور على البارد للبشرة والشعر والأظافر. إكسير الجمال المغربي الأصيل.",
			Price:       350,
			Category:    "زيوت",
			Rating:      5,
			Image:       "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?auto=format&fit=crop&q=80&w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1615485290382-441e4d049cb5?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1615485500704-8e99099928b3?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1564507004663-b6dfb3c824d5?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1571781926291-280553d36603?auto=format&fit=crop&q=80&w=1200",
			},
		},
		{
			ID:          2,
			Name:        "سيروم الشعر الذهبي",
			Description: "تركيبة غنية بزيت الأرغان وفيتامين E لإصلاح الشعر التالف ومنحه لمعاناً لا يقاوم.",
			Price:       280,
			Category:    "شعر",
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&q=80&w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1608248597279-f99d160bfbc8?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1522337660859-02fbefca4702?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1629198688000-71f23e745b6e?auto=format&fit=crop&q=80&w=1200",
			},
		},
		{
			ID:          3,
			Name:        "كريم الوجه الليلي",
			Description: "ترطيب عميق ومكافحة الشيخوخة بفضل مضادات الأكسدة الطبيعية في زيت الأرغان.",
			Price:       420,
			Category:    "بشرة",
			Rating:      4.9,
			Image:       "https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?auto=format&fit=crop&q=80&w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1620916297397-a4a5402a3c6c?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1596462502278-27bfdd403348?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1556228720-1987594bb5d6?auto=format&fit=crop&q=80&w=1200",
			},
		},
		{
			ID:          4,
			Name:        "صابون الأرغان البلدي",
			Description: "صابون تقليدي مغربي لتقشير البشرة وتنعيمها، مصنوع يدوياً.",
			Price:       150,
			Category:    "استحمام",
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1600607686527-6fb886090705?auto=format&fit=crop&q=80&w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1600607686527-6fb886090705?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1607006344380-b6775a0824a7?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1544367563-12123d8965cd?auto=format&fit=crop&q=80&w=1200",
			},
		},
		{
			ID:          5,
			Name:        "مجموعة الحمام المغربي",
			Description: "باقة متكاملة تحتوي على الزيت، الصابون، وقفاز التقشير لتجربة سبا في المنزل.",
			Price:       850,
			Category:    "مجموعات",
			Rating:      5,
			Image:       "https://images.unsplash.com/photo-1556228578-f87e83d47634?auto=format&fit=crop&q=80&w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1556228578-f87e83d47634?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1571781926291-280553d36603?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1540555700478-4be289fbecef?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1629198688000-71f23e745b6e?auto=format&fit=crop&q=80&w=1200",
			},
		},
		{
			ID:          6,
			Name:        "لوشن الجسم الفاخر",
			Description: "لوشن خفيف سريع الامتصاص برائحة العنبر والمسك وزيت الأرغان.",
			Price:       220,
			Category:    "جسم",
			Rating:      4.6,
			Image:       "https://images.unsplash.com/photo-1608248597279-f99d160bfbc8?auto=format&fit=crop&q=80&w=800",
			Images: []string{
				"https://images.unsplash.com/photo-1608248597279-f99d160bfbc8?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1515377905703-c4788e51af15?auto=format&fit=crop&q=80&w=1200",
				"https://images.unsplash.com/photo-1556228578-8d84f5d2d6c3?auto=format&fit=crop&q=80&w=1200",
			},
		},
	}
}
