package content

var arraysPage = Page{
	Title: "المصفوفات (Arrays)",
	Intro: "المصفوفات هي أبسط وأهم هياكل البيانات، حيث تخزن مجموعة من العناصر من نفس النوع في مواضع ذاكرة متتالية. تتميز بالوصول السريع للعناصر عبر المؤشرات.",
	Sections: []Section{
		{
			Heading: "ما هي المصفوفات؟",
			Cards: []Card{
				{Icon: "📏", Title: "الخصائص الأساسية", Lines: []string{
					"الحجم الثابت: يتم تحديد حجم المصفوفة عند التصريح ولا يمكن تغييره لاحقاً.",
					"العناصر المتجانسة: جميع العناصر يجب أن تكون من نفس نوع البيانات.",
					"الذاكرة المتتالية: تُخزن العناصر في الذاكرة في أماكن متجاورة، مما يسمح بالوصول السريع.",
				}},
				{Icon: "⚙️", Title: "مصطلحات أساسية", Lines: []string{
					"العنصر (Element): كل قيمة مخزنة في المصفوفة.",
					"المؤشر (Index): رقم فريد يحدد موقع كل عنصر، ويبدأ من 0.",
					"مُحدِّد الحجم (Size Declarator): الرقم الذي يحدد عدد العناصر التي يمكن للمصفوفة تخزينها.",
				}},
				{Icon: "🎯", Title: "التطبيقات العملية", Lines: []string{
					"معالجة الصور: تمثيل شبكة البيكسلات.",
					"الحوسبة العلمية: تمثيل المصفوفات والمتجهات الرياضية.",
					"الألعاب: تصميم خرائط المستويات أو شبكات اللعبة.",
				}},
			},
			Code: []Code{{
				Title: "التصريح الأساسي عن مصفوفة",
				Source: `// التصريح عن مصفوفة من نوع عدد صحيح يمكنها تخزين 5 عناصر
int scores[5];

// من الأفضل دائمًا استخدام ثابت لتحديد الحجم
const int NUMBER_OF_STUDENTS = 25;
double grades[NUMBER_OF_STUDENTS];`,
			}},
		},
		{
			Heading: "الوصول للعناصر واستخدام الحلقات",
			Text:    "يتم الوصول لكل عنصر في المصفوفة بشكل فردي باستخدام اسمه متبوعًا بمؤشر العنصر بين قوسين []. الحلقات التكرارية هي الطريقة المثلى لمعالجة جميع عناصر المصفوفة بكفاءة.",
			Code: []Code{{
				Title: "التعامل مع عناصر المصفوفة",
				Source: `const int SIZE = 3;
int values[SIZE];

values[0] = 10; // العنصر الأول
values[1] = 20; // العنصر الثاني
values[2] = 30; // العنصر الثالث

cout << "عناصر المصفوفة هي: ";
for (int i = 0; i < SIZE; i++) {
    cout << values[i] << " ";
}
// الناتج: عناصر المصفوفة هي: 10 20 30`,
			}},
		},
		{
			Heading: "تهيئة المصفوفات",
			Text:    "يمكنك إعطاء المصفوفة قيمًا أولية عند التصريح عنها باستخدام قائمة التهيئة {}. إذا كانت القائمة أقصر من حجم المصفوفة، تُهيّأ العناصر المتبقية بالقيمة صفر تلقائيًا.",
			Code: []Code{
				{
					Title: "Full & Implicit Initialization",
					Source: `int temps[4] = { 34, 36, 33, 30 };

// تهيئة ضمنية، الحجم يتحدد بـ 4 تلقائياً
int quizzes[] = { 12, 17, 15, 11 };`,
				},
				{
					Title: "Partial Initialization",
					Source: `// مصفوفة حجمها 7، تم تهيئة أول 4 عناصر فقط
int numbers[7] = { 1, 2, 4, 8 };
// { 1, 2, 4, 8, 0, 0, 0 }`,
				},
			},
		},
		{
			Heading: "البحث الخطي (Linear Search)",
			Text:    "البحث الخطي هو أبسط طريقة، حيث نمر على كل عنصر في المصفوفة ونقارنه بالقيمة المطلوبة حتى نجدها أو نصل إلى نهاية المصفوفة.",
			Code: []Code{{
				Title: "دالة البحث الخطي",
				Source: `int linearSearch(int arr[], int size, int key) {
    for (int i = 0; i < size; i++) {
        if (arr[i] == key) {
            return i; // تم العثور على العنصر، أرجع مؤشره
        }
    }
    return -1; // العنصر غير موجود
}`,
			}},
		},
	},
}
