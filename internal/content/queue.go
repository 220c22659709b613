package content

var queuePage = Page{
	Title: "الطابور (Queue)",
	Intro: "هيكل بيانات خطي يتبع مبدأ \"أول من يدخل، أول من يخرج\" (FIFO). يشبه طابور الانتظار الحقيقي، حيث يتم خدمة الشخص الذي أتى أولاً.",
	Sections: []Section{
		{
			Heading: "المفاهيم الأساسية للطابور",
			Cards: []Card{
				{Icon: "➡️", Title: "مبدأ FIFO", Lines: []string{
					"First-In, First-Out: أول عنصر يتم إضافته (enqueue) إلى الطابور هو أول عنصر يتم إزالته (dequeue).",
				}},
				{Icon: "⚙️", Title: "العمليات الأساسية", Lines: []string{
					"Enqueue: إضافة عنصر إلى نهاية (rear) الطابور.",
					"Dequeue: إزالة العنصر من بداية (front) الطابور.",
					"Front (or Peek): عرض قيمة العنصر الأمامي دون إزالته.",
					"isEmpty: التحقق مما إذا كان الطابور فارغًا.",
				}},
			},
		},
		{
			Heading: "التنفيذ باستخدام مصفوفة في C++",
			Text:    "يمكن تنفيذ الطابور باستخدام مصفوفة ومؤشرين: front للإشارة إلى بداية الطابور و rear للإشارة إلى نهايته.",
			Code: []Code{
				{
					Title: "تعريف فئة Queue",
					Source: `#define MAX_SIZE 100

class Queue {
private:
    int arr[MAX_SIZE];
    int front;
    int rear;

public:
    Queue() { front = -1; rear = -1; }

    bool isFull();
    bool isEmpty();
    void enqueue(int value);
    int dequeue();
};`,
				},
				{
					Title: "دالة enqueue",
					Source: `void Queue::enqueue(int value) {
    if (rear == MAX_SIZE - 1) { // التحقق من الامتلاء
        cout << "Queue is full!";
        return;
    }
    if (front == -1) front = 0; // عند إضافة أول عنصر
    rear++;
    arr[rear] = value;
}`,
				},
				{
					Title: "دالة dequeue",
					Source: `int Queue::dequeue() {
    if (front == -1 || front > rear) { // التحقق من الفراغ
        cout << "Queue is empty!";
        return -1;
    }
    int value = arr[front];
    front++;
    return value;
}`,
				},
			},
		},
	},
}
