package content

var stackPage = Page{
	Title: "المكدس (Stack)",
	Intro: "هيكل بيانات خطي يتبع مبدأ \"آخر من يدخل، أول من يخرج\" (LIFO). يمكن تخيلها ككومة من الكتب، حيث لا يمكنك إلا إضافة كتاب جديد في الأعلى أو إزالة الكتاب العلوي.",
	Sections: []Section{
		{
			Heading: "المفاهيم الأساسية للمكدس",
			Cards: []Card{
				{Icon: "📥", Title: "مبدأ LIFO", Lines: []string{
					"Last-In, First-Out: آخر عنصر يتم إضافته (push) إلى المكدس هو أول عنصر يتم إزالته (pop).",
				}},
				{Icon: "⚙️", Title: "العمليات الأساسية", Lines: []string{
					"Push: إضافة عنصر إلى قمة المكدس.",
					"Pop: إزالة العنصر العلوي من المكدس.",
					"Peek (or Top): عرض قيمة العنصر العلوي دون إزالته.",
					"isEmpty: التحقق مما إذا كان المكدس فارغًا.",
				}},
			},
		},
		{
			Heading: "التنفيذ باستخدام مصفوفة في C++",
			Text:    "أبسط طريقة لتنفيذ المكدس هي باستخدام مصفوفة ومتغير يسمى top لتتبع العنصر العلوي.",
			Code: []Code{
				{
					Title: "تعريف فئة Stack",
					Source: `#define MAX_SIZE 100 // تحديد أقصى حجم للمكدس

class Stack {
private:
    int arr[MAX_SIZE]; // مصفوفة لتخزين العناصر
    int top;           // مؤشر لقمة المكدس

public:
    Stack() { top = -1; } // المكدس فارغ في البداية

    bool push(int value);
    int pop();
    int peek();
    bool isEmpty();
};`,
				},
				{
					Title: "دالة push",
					Source: `bool Stack::push(int value) {
    if (top >= (MAX_SIZE - 1)) { // التحقق من الامتلاء (Overflow)
        cout << "Stack Overflow!";
        return false;
    } else {
        arr[++top] = value; // زيادة top ثم إضافة العنصر
        return true;
    }
}`,
				},
				{
					Title: "دالة pop",
					Source: `int Stack::pop() {
    if (top < 0) { // التحقق من الفراغ (Underflow)
        cout << "Stack Underflow!";
        return 0;
    } else {
        int value = arr[top--]; // أخذ القيمة ثم إنقاص top
        return value;
    }
}`,
				},
				{
					Title: "دالة peek",
					Source: `int Stack::peek() {
    if (top < 0) {
        cout << "Stack is Empty!";
        return 0;
    } else {
        return arr[top]; // إرجاع العنصر العلوي
    }
}`,
				},
			},
		},
	},
}
