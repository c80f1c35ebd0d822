package content

// Surah is one entry of the surah boundary table.
type Surah struct {
	Number    int
	Name      string
	StartPage int
}

// Juz is one entry of the juz boundary table. Summary is the printed
// table-of-contents blurb for the part.
type Juz struct {
	Number    int
	Name      string
	StartPage int
	Summary   string
}

// Surahs lists the 114 surahs by logical start page.
var Surahs = []Surah{
	{1, "الفاتحة", 1},
	{2, "البقرة", 2},
	{3, "آل عمران", 50},
	{4, "النساء", 77},
	{5, "المائدة", 106},
	{6, "الأنعام", 128},
	{7, "الأعراف", 151},
	{8, "الأنفال", 177},
	{9, "التوبة", 187},
	{10, "يونس", 208},
	{11, "هود", 221},
	{12, "يوسف", 235},
	{13, "الرعد", 249},
	{14, "إبراهيم", 255},
	{15, "الحجر", 262},
	{16, "النحل", 267},
	{17, "الإسراء", 282},
	{18, "الكهف", 293},
	{19, "مريم", 305},
	{20, "طه", 312},
	{21, "الأنبياء", 322},
	{22, "الحج", 332},
	{23, "المؤمنون", 342},
	{24, "النور", 350},
	{25, "الفرقان", 359},
	{26, "الشعراء", 367},
	{27, "النمل", 377},
	{28, "القصص", 385},
	{29, "العنكبوت", 396},
	{30, "الروم", 404},
	{31, "لقمان", 411},
	{32, "السجدة", 415},
	{33, "الأحزاب", 418},
	{34, "سبأ", 428},
	{35, "فاطر", 434},
	{36, "يس", 440},
	{37, "الصافات", 446},
	{38, "ص", 453},
	{39, "الزمر", 458},
	{40, "غافر", 467},
	{41, "فصلت", 477},
	{42, "الشورى", 483},
	{43, "الزخرف", 489},
	{44, "الدخان", 496},
	{45, "الجاثية", 499},
	{46, "الأحقاف", 502},
	{47, "محمد", 507},
	{48, "الفتح", 511},
	{49, "الحجرات", 515},
	{50, "ق", 518},
	{51, "الذاريات", 520},
	{52, "الطور", 523},
	{53, "النجم", 526},
	{54, "القمر", 528},
	{55, "الرحمن", 531},
	{56, "الواقعة", 534},
	{57, "الحديد", 537},
	{58, "المجادلة", 542},
	{59, "الحشر", 545},
	{60, "الممتحنة", 549},
	{61, "الصف", 551},
	{62, "الجمعة", 553},
	{63, "المنافقون", 554},
	{64, "التغابن", 556},
	{65, "الطلاق", 558},
	{66, "التحريم", 560},
	{67, "الملك", 562},
	{68, "القلم", 564},
	{69, "الحاقة", 566},
	{70, "المعارج", 568},
	{71, "نوح", 570},
	{72, "الجن", 572},
	{73, "المزمل", 574},
	{74, "المدثر", 575},
	{75, "القيامة", 577},
	{76, "الإنسان", 578},
	{77, "المرسلات", 580},
	{78, "النبأ", 582},
	{79, "النازعات", 583},
	{80, "عبس", 585},
	{81, "التكوير", 586},
	{82, "الانفطار", 587},
	{83, "المطففين", 587},
	{84, "الانشقاق", 589},
	{85, "البروج", 590},
	{86, "الطارق", 591},
	{87, "الأعلى", 591},
	{88, "الغاشية", 592},
	{89, "الفجر", 593},
	{90, "البلد", 594},
	{91, "الشمس", 595},
	{92, "الليل", 595},
	{93, "الضحى", 596},
	{94, "الشرح", 596},
	{95, "التين", 597},
	{96, "العلق", 597},
	{97, "القدر", 598},
	{98, "البينة", 598},
	{99, "الزلزلة", 599},
	{100, "العاديات", 599},
	{101, "القارعة", 600},
	{102, "التكاثر", 600},
	{103, "العصر", 601},
	{104, "الهمزة", 601},
	{105, "الفيل", 601},
	{106, "قريش", 602},
	{107, "الماعون", 602},
	{108, "الكوثر", 602},
	{109, "الكافرون", 603},
	{110, "النصر", 603},
	{111, "المسد", 603},
	{112, "الإخلاص", 604},
	{113, "الفلق", 604},
	{114, "الناس", 604},
}

// Juzs lists the 30 juz by logical start page.
var Juzs = []Juz{
	{1, "الجزء الأول", 1, "الفاتحة، البقرة"},
	{2, "الجزء الثاني", 22, "تكملة البقرة - سيقول السفهاء"},
	{3, "الجزء الثالث", 42, "تكملة البقرة - تلك الرسل، بداية آل عمران"},
	{4, "الجزء الرابع", 62, "تكملة آل عمران - لن تنالوا، بداية النساء"},
	{5, "الجزء الخامس", 82, "تكملة النساء - والمحصنات"},
	{6, "الجزء السادس", 102, "تكملة النساء - لا يحب الله، بداية المائدة"},
	{7, "الجزء السابع", 121, "تكملة المائدة - لتجدن، بداية الأنعام"},
	{8, "الجزء الثامن", 142, "تكملة الأنعام - ولو أننا، بداية الأعراف"},
	{9, "الجزء التاسع", 162, "تكملة الأعراف - قال الملأ، بداية الأنفال"},
	{10, "الجزء العاشر", 182, "تكملة الأنفال - واعلموا، بداية التوبة"},
	{11, "الجزء الحادي عشر", 201, "تكملة التوبة - يعتذرون، يونس، هود"},
	{12, "الجزء الثاني عشر", 221, "تكملة هود - وما من دابة، يوسف"},
	{13, "الجزء الثالث عشر", 241, "تكملة يوسف - وما أبرئ، الرعد، إبراهيم"},
	{14, "الجزء الرابع عشر", 262, "ربما، الحجر، النحل"},
	{15, "الجزء الخامس عشر", 282, "سبحان، الإسراء، الكهف"},
	{16, "الجزء السادس عشر", 302, "قال ألم، تكملة الكهف، مريم، طه"},
	{17, "الجزء السابع عشر", 322, "اقترب، الأنبياء، الحج"},
	{18, "الجزء الثامن عشر", 342, "قد أفلح، المؤمنون، النور، الفرقان"},
	{19, "الجزء التاسع عشر", 362, "وقال الذين، تكملة الفرقان، الشعراء، النمل"},
	{20, "الجزء العشرون", 382, "فما كان، تكملة النمل، القصص، العنكبوت"},
	{21, "الجزء الحادي والعشرون", 402, "ولا تجادلوا، تكملة العنكبوت، الروم، لقمان، السجدة، الأحزاب"},
	{22, "الجزء الثاني والعشرون", 422, "ومن يقنت، تكملة الأحزاب، سبأ، فاطر، يس"},
	{23, "الجزء الثالث والعشرون", 442, "وما أنزلنا، تكملة يس، الصافات، ص، الزمر"},
	{24, "الجزء الرابع والعشرون", 462, "فمن أظلم، تكملة الزمر، غافر، فصلت"},
	{25, "الجزء الخامس والعشرون", 482, "إليه يرد، تكملة فصلت، الشورى، الزخرف، الدخان، الجاثية"},
	{26, "الجزء السادس والعشرون", 502, "حم، الأحقاف، محمد، الفتح، الحجرات، ق، الذاريات"},
	{27, "الجزء السابع والعشرون", 522, "قال فما خطبكم، تكملة الذاريات، الطور، النجم، القمر، الرحمن، الواقعة، الحديد"},
	{28, "الجزء الثامن والعشرون", 542, "قد سمع، المجادلة، الحشر، الممتحنة، الصف، الجمعة، المنافقون، التغابن، الطلاق، التحريم"},
	{29, "الجزء التاسع والعشرون", 562, "تبارك، الملك، القلم، الحاقة، المعارج، نوح، الجن، المزمل، المدثر، القيامة، الإنسان، المرسلات"},
	{30, "الجزء الثلاثون", 582, "عم يتساءلون، النبأ إلى الناس"},
}
