package view

// Strings holds the reader-facing text of the site.
type Strings struct {
	NotFoundTitle       string
	ArticleNotFoundText string
	PageNotFoundTitle   string
	PageNotFoundText    string
	BackToArticles      string
	MoreArticles        string

	ListTitle       string
	ListIntro       string
	ListErrorTitle  string
	ErrorTitle      string
	Retry           string
	EmptyTitle      string
	EmptyText       string
	Featured        string
	ReadMore        string
	ReadingTime     string
	Prev            string
	Next            string
	PageInfo        string
	CategoryTitle   string
	FeaturedHeading string

	AboutTitle string
	AboutText  string

	NavHome     string
	NavArticles string
	NavAbout    string

	ListingMetaTitle       string
	ListingMetaDescription string
	ListingOGDescription   string
	ListingOGImageAlt      string
}

// PersianStrings returns the default fa-IR text.
func PersianStrings() Strings {
	return Strings{
		NotFoundTitle:       "مقاله یافت نشد",
		ArticleNotFoundText: "متأسفانه مقاله‌ای با این عنوان در دسترس نیست.",
		PageNotFoundTitle:   "صفحه یافت نشد",
		PageNotFoundText:    "صفحه‌ای که به دنبال آن هستید وجود ندارد.",
		BackToArticles:      "بازگشت به مقالات",
		MoreArticles:        "مشاهده مقالات بیشتر",

		ListTitle:       "مجموعه مقالات",
		ListIntro:       "مجموعه‌ای منتخب از مقالات خواندنی و الهام‌بخش را کشف کنید و از تجربیات ارزشمند بهره‌مند شوید",
		ListErrorTitle:  "بارگذاری مقالات با خطا مواجه شد",
		ErrorTitle:      "خطا در بارگذاری مقاله",
		Retry:           "تلاش مجدد",
		EmptyTitle:      "مقاله‌ای یافت نشد",
		EmptyText:       "در حال حاضر مقاله‌ای برای نمایش وجود ندارد. لطفاً بعداً دوباره بررسی کنید.",
		Featured:        "ویژه",
		ReadMore:        "ادامه مطلب",
		ReadingTime:     "%s دقیقه مطالعه",
		Prev:            "قبلی",
		Next:            "بعدی",
		PageInfo:        "صفحه %s از %s • مجموع %s مقاله",
		CategoryTitle:   "مقالات دسته %s",
		FeaturedHeading: "مقالات ویژه",

		AboutTitle: "درباره ما",
		AboutText:  "ما در این وب‌سایت تلاش می‌کنیم مفاهیم پیچیدهٔ اقتصادی را به زبانی ساده و قابل‌درک برای همه توضیح دهیم. هدف ما افزایش سواد اقتصادی در جامعه است؛ چه تازه با این مفاهیم آشنا شده‌اید و چه به دنبال درک عمیق‌تری هستید، اینجا جای مناسبی برای شروع و رشد است.",

		NavHome:     "خانه",
		NavArticles: "مقالات",
		NavAbout:    "درباره من",

		ListingMetaTitle:       "آخرین مقالات | وبلاگ ما",
		ListingMetaDescription: "جدیدترین مقالات، آموزش‌ها و مطالب وبلاگ ما را بخوانید.",
		ListingOGDescription:   "با جدیدترین پست‌ها و مطالب ویژه همراه باشید.",
		ListingOGImageAlt:      "تصویر شاخص وبلاگ",
	}
}
