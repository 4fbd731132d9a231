package handlers

// Arabic demo content for seeding a fresh instance. Imported posts are
// tagged with mockDataTag so the clear path can find them again.

const mockDataTag = "_mock"

type seedPost struct {
	Type        string
	Title       string
	Description string
	Location    string
	ContactInfo string
	Tags        []string
	Username    string
	UserAvatar  string
	IsCompleted bool
	Images      []string
	// OriginalIndex points at the seed post an achievement celebrates.
	// Negative for non-achievements.
	OriginalIndex int
}

type seedReply struct {
	PostIndex int
	Username  string
	Text      string
}

var mockPosts = []seedPost{
	{
		Type:          "helpNeeded",
		Title:         "مساعدة في نقل أثاث منزلي",
		Description:   "أنا رجل مسن (75 سنة) وأحتاج إلى مساعدة في نقل بعض قطع الأثاث من منزلي القديم إلى شقتي الجديدة في حي النزهة. لا أستطيع رفع الأشياء الثقيلة بمفردي.\n\n**ما أحتاجه**: 3-4 أشخاص لمدة ساعتين يوم الجمعة القادم",
		Location:      "حي النزهة، الرياض، المملكة العربية السعودية",
		ContactInfo:   "أبو محمد: 0555123456",
		Tags:          []string{"نقل أثاث", "مساعدة كبار السن", "تطوع", "الرياض"},
		Username:      "أبو محمد الحربي",
		UserAvatar:    "https://ui-avatars.com/api/?name=أبو+محمد&background=random",
		OriginalIndex: -1,
	},
	{
		Type:          "helpNeeded",
		Title:         "نحتاج متطوعين لتركيب مكيف في مسجد الرحمن",
		Description:   "مسجد الرحمن في حي السلامة يحتاج إلى تركيب مكيفات جديدة قبل شهر رمضان المبارك. المكيفات متوفرة ولكن نحتاج إلى متطوعين لديهم خبرة في التركيب.",
		Location:      "حي السلامة، جدة، المملكة العربية السعودية",
		ContactInfo:   "إمام المسجد: 0532156789",
		Tags:          []string{"مسجد", "تركيب مكيفات", "رمضان", "جدة", "متطوعين"},
		Username:      "إدارة مسجد الرحمن",
		UserAvatar:    "https://ui-avatars.com/api/?name=مسجد+الرحمن&background=random",
		OriginalIndex: -1,
	},
	{
		Type:          "helpNeeded",
		Title:         "بحاجة لمساعدة في إصلاح تسرب المياه",
		Description:   "لدينا تسرب مياه في المطبخ تحت الحوض ولا أعرف كيفية إصلاحه. أحتاج شخصاً يعرف كيفية إصلاح التسرب. سأدفع ثمن أي قطع غيار مطلوبة.",
		Location:      "حي الخالدية، المدينة المنورة، المملكة العربية السعودية",
		ContactInfo:   "أم سارة: 0544321098",
		Tags:          []string{"إصلاح منزلي", "تسرب مياه", "المدينة المنورة"},
		Username:      "أم سارة",
		UserAvatar:    "https://ui-avatars.com/api/?name=أم+سارة&background=random",
		OriginalIndex: -1,
	},
	{
		Type:          "helpOffered",
		Title:         "متطوع لتعليم كبار السن استخدام الأجهزة الذكية",
		Description:   "أنا خالد، خريج تقنية معلومات. أتطوع لتعليم كبار السن كيفية استخدام الهواتف الذكية والأجهزة اللوحية، وإعداد البريد الإلكتروني وتطبيقات الخدمات الحكومية.",
		Location:      "حي العزيزية، الرياض، المملكة العربية السعودية",
		ContactInfo:   "خالد: 0556789012 (واتساب متاح)",
		Tags:          []string{"تعليم", "تقنية", "كبار السن", "متطوع", "الرياض"},
		Username:      "خالد المطيري",
		UserAvatar:    "https://ui-avatars.com/api/?name=خالد+المطيري&background=random",
		OriginalIndex: -1,
	},
	{
		Type:          "helpOffered",
		Title:         "مستعد للمساعدة في أعمال النجارة البسيطة",
		Description:   "أنا أحمد، أعمل نجاراً منذ 20 عاماً. مستعد للمساعدة في أعمال النجارة البسيطة للأسر المحتاجة أو المساجد أو المدارس: إصلاح الأثاث، تركيب الأرفف، إصلاح الأبواب.",
		Location:      "حي المروة، جدة، المملكة العربية السعودية",
		ContactInfo:   "أحمد: 0537654321",
		Tags:          []string{"نجارة", "إصلاح", "متطوع", "جدة"},
		Username:      "أحمد النجار",
		UserAvatar:    "https://ui-avatars.com/api/?name=أحمد+النجار&background=random",
		OriginalIndex: -1,
	},
	{
		Type:          "achievement",
		Title:         "تم نقل الأثاث بنجاح، شكراً لشباب الحي",
		Description:   "الحمد لله، تطوع خمسة من شباب الحي ونقلوا الأثاث كاملاً في أقل من ساعتين. جزاهم الله خيراً على وقفتهم.",
		Location:      "حي النزهة، الرياض، المملكة العربية السعودية",
		ContactInfo:   "أبو محمد: 0555123456",
		Tags:          []string{"نقل أثاث", "إنجاز", "الرياض"},
		Username:      "أبو محمد الحربي",
		UserAvatar:    "https://ui-avatars.com/api/?name=أبو+محمد&background=random",
		IsCompleted:   true,
		OriginalIndex: 0,
	},
}

var mockReplies = []seedReply{
	{PostIndex: 0, Username: "سعود العتيبي", Text: "أنا وأخي جاهزون للمساعدة يوم الجمعة بإذن الله."},
	{PostIndex: 1, Username: "فهد القحطاني", Text: "عندي خبرة في تركيب المكيفات، سأتواصل مع الإمام."},
	{PostIndex: 3, Username: "أم عبد الله", Text: "والدتي تحتاج لتعلم استخدام تطبيق أبشر، هل يمكن التواصل؟"},
}
