package content

var linkedListPage = Page{
	Title: "القوائم المترابطة (Linked Lists)",
	Intro: "بنية بيانات ديناميكية تتكون من سلسلة من العُقد، حيث تحتوي كل عقدة على بيانات ومؤشر للعقدة التالية. إنها بديل مرن للمصفوفات.",
	Sections: []Section{
		{
			Heading: "لماذا نستخدم القوائم المرتبطة؟",
			Cards: []Card{
				{Icon: "⚡", Title: "الميزة الديناميكية", Lines: []string{
					"حجم مرن: يمكن للقوائم المرتبطة أن تنمو وتتقلص بسهولة أثناء تشغيل البرنامج، على عكس المصفوفات.",
					"لا حاجة للتخمين: لا نحتاج إلى معرفة عدد العناصر مسبقًا. يتم إنشاء العقد في الذاكرة حسب الحاجة.",
				}},
				{Icon: "🚀", Title: "إضافة وحذف فعال", Lines: []string{
					"سرعة في التعديل: لإدراج أو حذف عنصر، كل ما نحتاجه هو إعادة توجيه بعض المؤشرات (O(1)).",
					"لا حاجة للإزاحة: لا نحتاج إلى إزاحة العناصر الأخرى عند الإضافة أو الحذف.",
				}},
			},
		},
		{
			Heading: "البنية الأساسية للقائمة المرتبطة",
			Cards: []Card{
				{Icon: "🧱", Title: "مكونات العقدة (Node)", Lines: []string{
					"1. البيانات (Data): القيمة الفعلية التي نريد تخزينها.",
					"2. المؤشر (Next Pointer): عنوان يشير إلى العقدة التالية. العقدة الأخيرة تشير إلى NULL.",
				}},
				{Icon: "📍", Title: "المؤشر الرئيسي (Head)", Lines: []string{
					"الـ Head مؤشر خاص يشير دائمًا إلى العقدة الأولى في القائمة. إذا فقدناه فإننا نفقد القائمة بأكملها.",
				}},
			},
		},
		{
			Heading: "التنفيذ باستخدام C++",
			Text:    "عادةً نستخدم فئتين: فئة Node لتمثيل العقدة، وفئة LinkedList لإدارة العمليات على القائمة.",
			Code: []Code{
				{
					Title: "تعريف فئة Node و LinkedList",
					Source: `class Node {
public:
    int data;   // البيانات المخزنة
    Node* next; // مؤشر للعقدة التالية
};

class LinkedList {
private:
    Node* head; // مؤشر لأول عقدة في القائمة

public:
    LinkedList() { head = nullptr; }

    void insertAtEnd(int value);
    void insertAtBeginning(int value);
    bool deleteNode(int value);
    void display();
};`,
				},
				{
					Title: "دالة insertAtEnd",
					Source: `void LinkedList::insertAtEnd(int value) {
    Node* newNode = new Node(); // 1. إنشاء عقدة جديدة
    newNode->data = value;
    newNode->next = nullptr;

    if (head == nullptr) { // 2. إذا كانت القائمة فارغة
        head = newNode;
        return;
    }

    Node* temp = head; // 3. المرور إلى نهاية القائمة
    while (temp->next != nullptr) {
        temp = temp->next;
    }

    temp->next = newNode; // 4. ربط العقدة الأخيرة بالعقدة الجديدة
}`,
				},
				{
					Title: "دالة deleteNode",
					Source: `bool LinkedList::deleteNode(int value) {
    if (head == nullptr) return false; // القائمة فارغة

    if (head->data == value) { // العقدة المراد حذفها هي الرأس
        Node* temp = head;
        head = head->next;
        delete temp;
        return true;
    }

    Node* current = head;
    while (current->next != nullptr && current->next->data != value) {
        current = current->next;
    }
    if (current->next == nullptr) return false; // غير موجودة

    Node* temp = current->next;
    current->next = temp->next;
    delete temp;
    return true;
}`,
				},
			},
		},
	},
}

var doublyPage = Page{
	Title: "القوائم المرتبطة المزدوجة",
	Intro: "تطور للقائمة البسيطة، حيث تحتوي كل عقدة على مؤشرين: واحد للعقدة التالية وآخر للعقدة السابقة، مما يتيح التنقل في كلا الاتجاهين.",
	Sections: []Section{
		{
			Heading: "لماذا نستخدم القائمة المزدوجة؟",
			Cards: []Card{
				{Icon: "↔️", Title: "تنقل ثنائي الاتجاه", Lines: []string{
					"القدرة على اجتياز القائمة للأمام (next) وللخلف (prev)، وهو مفيد في محررات النصوص وتاريخ المتصفح.",
				}},
				{Icon: "🗑️", Title: "حذف أسهل", Lines: []string{
					"إذا كان لدينا مؤشر للعقدة المراد حذفها، نصل مباشرة إلى العقدة السابقة عبر prev دون البحث من البداية.",
				}},
				{Icon: "🧱", Title: "مكونات العقدة المزدوجة", Lines: []string{
					"1. المؤشر السابق (Prev Pointer): يكون NULL في العقدة الأولى.",
					"2. البيانات (Data): القيمة الفعلية المخزنة.",
					"3. المؤشر التالي (Next Pointer): يكون NULL في العقدة الأخيرة.",
				}},
			},
		},
		{
			Heading: "التنفيذ باستخدام C++",
			Code: []Code{
				{
					Title: "تعريف فئة Node و DoublyLinkedList",
					Source: `class Node {
public:
    int data;   // البيانات
    Node* next; // مؤشر للتالي
    Node* prev; // مؤشر للسابق
};

class DoublyLinkedList {
private:
    Node* head; // مؤشر للبداية
public:
    DoublyLinkedList() : head(nullptr) {}
    void insertAtBeginning(int value);
    void deleteNode(int value);
};`,
				},
				{
					Title: "دالة insertAtBeginning",
					Source: `void DoublyLinkedList::insertAtBeginning(int value) {
    Node* newNode = new Node(); // 1. إنشاء عقدة جديدة
    newNode->data = value;
    newNode->next = head;       // 2. ربطها بالرأس القديم
    newNode->prev = nullptr;

    if (head != nullptr) {      // 3. إذا لم تكن القائمة فارغة
        head->prev = newNode;
    }

    head = newNode;             // 4. تحديث الرأس
}`,
				},
				{
					Title: "دالة deleteNode",
					Source: `if (current == nullptr) return; // لم يتم العثور عليها

if (current == head) {           // حذف الرأس
    head = current->next;
}
if (current->next != nullptr) {  // تحديث prev للعقدة التالية
    current->next->prev = current->prev;
}
if (current->prev != nullptr) {  // تحديث next للعقدة السابقة
    current->prev->next = current->next;
}

delete current; // تحرير الذاكرة`,
				},
			},
		},
	},
}

var circularPage = Page{
	Title: "القوائم المرتبطة الدائرية",
	Intro: "نوع خاص من القوائم المرتبطة حيث لا يوجد نهاية (NULL). العقدة الأخيرة تشير مباشرة إلى العقدة الأولى، مما يخلق حلقة.",
	Sections: []Section{
		{
			Heading: "المفهوم الأساسي والتطبيقات",
			Cards: []Card{
				{Icon: "🔄", Title: "الهيكل الدائري", Lines: []string{
					"لا وجود لـ NULL: مؤشر next في العقدة الأخيرة يعود ليشير إلى العقدة الأولى (Head).",
					"اجتياز لا نهائي: بدون شرط توقف صحيح يستمر المرور على القائمة إلى الأبد.",
				}},
				{Icon: "🎮", Title: "التطبيقات العملية", Lines: []string{
					"جدولة المهام (Round Robin): التنقل بين مجموعة من المهام بشكل دوري.",
					"قوائم تشغيل الوسائط: تكرار قائمة تشغيل بشكل مستمر.",
					"التنقل في الألعاب: تحريك الشخصيات بين نقاط ثابتة على الخريطة.",
				}},
			},
		},
		{
			Heading: "التنفيذ باستخدام C++",
			Text:    "يعتمد التنفيذ على نفس بنية العقدة للقائمة البسيطة، ولكن المنطق يختلف عند الإضافة والعرض للحفاظ على الهيكل الدائري.",
			Code: []Code{
				{
					Title: "دالة display",
					Source: `void CircularLinkedList::display() {
    if (last == nullptr) { // 1. التحقق إذا كانت القائمة فارغة
        cout << "القائمة فارغة!" << endl;
        return;
    }

    Node* temp = last->next; // 2. البدء من الرأس
    do {                     // 3. طباعة الرأس مرة واحدة على الأقل
        cout << temp->data << " -> ";
        temp = temp->next;
    } while (temp != last->next); // 4. شرط التوقف هو العودة للرأس
}`,
				},
				{
					Title: "دالة addToEnd",
					Source: `void CircularLinkedList::addToEnd(int value) {
    Node* newNode = new Node{value, nullptr};

    if (last == nullptr) {   // القائمة فارغة
        last = newNode;
        last->next = last;   // تشير إلى نفسها
    } else {
        newNode->next = last->next; // تشير إلى الرأس
        last->next = newNode;
        last = newNode;             // هي الآن الأخيرة
    }
}`,
				},
			},
		},
	},
}
